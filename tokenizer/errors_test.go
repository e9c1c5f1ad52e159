package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireErrorKind(t *testing.T, source string, want ErrorKind) {
	t.Helper()
	_, err := collectAll(t, source)
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, want, tokErr.Kind)
}

func TestUnterminatedSingleQuoteString(t *testing.T) {
	requireErrorKind(t, "'abc\n", ErrUnterminatedString)
}

func TestUnexpectedEOFInsideFString(t *testing.T) {
	requireErrorKind(t, `f"abc`, ErrUnexpectedEOF)
}

func TestUnexpectedCharacterAfterBareBackslashAtEOF(t *testing.T) {
	requireErrorKind(t, `\`, ErrUnexpectedCharacterAfterBackslash)
}

func TestUnexpectedCharacterAfterBackslash(t *testing.T) {
	requireErrorKind(t, "\\a\n", ErrUnexpectedCharacterAfterBackslash)
}

func TestUnexpectedCharacterOnInvalidIdentifierStart(t *testing.T) {
	requireErrorKind(t, "$\n", ErrUnexpectedCharacter)
}

func TestErrorIsMatchesByKindOnly(t *testing.T) {
	_, err := collectAll(t, "'abc\n")
	require.Error(t, err)
	var tokErr *Error
	require.ErrorAs(t, err, &tokErr)
	require.True(t, tokErr.Is(&Error{Kind: ErrUnterminatedString}))
	require.False(t, tokErr.Is(&Error{Kind: ErrUnexpectedEOF}))
}
