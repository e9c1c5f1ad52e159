package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/pytokens/token"
)

func TestFStringWithExpressionHole(t *testing.T) {
	source := `f"hello {name}!"`
	toks, err := collectAll(t, source)
	require.NoError(t, err)

	want := []token.Token{
		{Kind: token.FStringStart, Start: pos(1, 0, 0), End: pos(1, 2, 2)},
		{Kind: token.FStringMiddle, Start: pos(1, 2, 2), End: pos(1, 8, 8)},
		{Kind: token.LBrace, Start: pos(1, 8, 8), End: pos(1, 9, 9)},
		{Kind: token.Identifier, Start: pos(1, 9, 9), End: pos(1, 13, 13)},
		{Kind: token.RBrace, Start: pos(1, 13, 13), End: pos(1, 14, 14)},
		{Kind: token.FStringMiddle, Start: pos(1, 14, 14), End: pos(1, 15, 15)},
		{Kind: token.FStringEnd, Start: pos(1, 15, 15), End: pos(1, 16, 16)},
		{Kind: token.Newline, Start: pos(1, 16, 16), End: pos(1, 17, 17)},
		{Kind: token.EndMarker, Start: pos(2, 0, 17), End: pos(2, 0, 17)},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []byte("f\""), toks[0].Lexeme([]byte(source)))
	require.Equal(t, []byte("hello "), toks[1].Lexeme([]byte(source)))
	require.Equal(t, []byte("name"), toks[3].Lexeme([]byte(source)))
	require.Equal(t, []byte("!"), toks[5].Lexeme([]byte(source)))
	require.Nil(t, toks[7].Lexeme([]byte(source))) // synthesized trailing newline, out of range
}

func TestTStringSharesFStringMachine(t *testing.T) {
	source := `t"hi {x}"` + "\n"
	toks, err := collectAll(t, source)
	require.NoError(t, err)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.TStringStart, token.TStringMiddle, token.LBrace,
		token.Identifier, token.RBrace, token.TStringEnd,
		token.Newline, token.EndMarker,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kind sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubledBraceIsLiteral(t *testing.T) {
	source := `f"{{literal}}"` + "\n"
	toks, err := collectAll(t, source)
	require.NoError(t, err)

	require.Equal(t, token.FStringStart, toks[0].Kind)
	require.Equal(t, token.FStringMiddle, toks[1].Kind)
	require.Equal(t, []byte("{{literal}}"), toks[1].Lexeme([]byte(source)))
	require.Equal(t, token.FStringEnd, toks[2].Kind)
}

func TestUnterminatedSingleQuoteFStringAtNewline(t *testing.T) {
	_, err := collectAll(t, "f\"abc\n")
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, ErrUnterminatedString, tokErr.Kind)
}
