package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/pytokens/token"
)

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestIndentAndDedentSequence(t *testing.T) {
	toks, err := collectAll(t, "a\n    b\nc\n")
	require.NoError(t, err)

	want := []token.Kind{
		token.Identifier, token.Newline,
		token.Indent, token.Identifier, token.Newline,
		token.Whitespace, token.Dedent, token.Identifier, token.Newline,
		token.EndMarker,
	}
	if diff := cmp.Diff(want, kindsOf(toks)); diff != "" {
		t.Errorf("kind sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedIndentPopsMultipleLevelsAtOnce(t *testing.T) {
	toks, err := collectAll(t, "a\n  b\n    c\nd\n")
	require.NoError(t, err)

	var dedents int
	for _, tok := range toks {
		if tok.Kind == token.Dedent {
			dedents++
		}
	}
	require.Equal(t, 2, dedents, "dedenting from the 4-space level back to column 0 pops both stacked levels")
}

func TestDedentDoesNotMatchAnyOuterIndent(t *testing.T) {
	_, err := collectAll(t, "a\n  b\n    c\n   d\n")
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, ErrDedentMismatch, tokErr.Kind)
}

func TestInconsistentTabsAndSpacesSameWidth(t *testing.T) {
	_, err := collectAll(t, "a\n  b\n\t\tc\n")
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, ErrInconsistentTabsAndSpaces, tokErr.Kind)
}

func TestInconsistentTabsAndSpacesOnGrowth(t *testing.T) {
	_, err := collectAll(t, "a\n  b\n\t\t\tc\n")
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, ErrInconsistentTabsAndSpaces, tokErr.Kind)
}

func TestBlankLineIndentationIsIgnored(t *testing.T) {
	// A line of only a comment after whitespace never produces Indent/Dedent.
	toks, err := collectAll(t, "a\n    # comment\nb\n")
	require.NoError(t, err)

	var sawIndentOrDedent bool
	for _, tok := range toks {
		if tok.Kind == token.Indent || tok.Kind == token.Dedent {
			sawIndentOrDedent = true
		}
	}
	require.False(t, sawIndentOrDedent)
}
