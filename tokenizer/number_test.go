package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/pytokens/token"
)

func firstTokenLexeme(t *testing.T, source string) (token.Token, []byte) {
	t.Helper()
	tz := Tokenize(source)
	tok, err := tz.Next()
	require.NoError(t, err)
	return tok, tok.Lexeme([]byte(source))
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"binary with underscore", "0b10_1\n", "0b10_1"},
		{"octal", "0o17\n", "0o17"},
		{"hex", "0xFF_ee\n", "0xFF_ee"},
		{"binary with exponent quirk", "0b1e-1\n", "0b1e-1"},
		{"leading dot float", ".5\n", ".5"},
		{"trailing dot float", "5.\n", "5."},
		{"scientific notation", "1e10\n", "1e10"},
		{"signed exponent", "1e-10\n", "1e-10"},
		{"complex suffix", "3j\n", "3j"},
		{"underscored integer", "1_000\n", "1_000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, lexeme := firstTokenLexeme(t, tt.source)
			require.Equal(t, token.Number, tok.Kind)
			require.Equal(t, tt.want, string(lexeme))
		})
	}
}

func TestEllipsisIsOneToken(t *testing.T) {
	tok, lexeme := firstTokenLexeme(t, "...\n")
	require.Equal(t, token.Op, tok.Kind)
	require.Equal(t, "...", string(lexeme))
}

func TestAttributeDotIsNotANumber(t *testing.T) {
	toks, err := collectAll(t, "a.b\n")
	require.NoError(t, err)
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, token.Op, toks[1].Kind)
	require.Equal(t, ".", string(toks[1].Lexeme([]byte("a.b\n"))))
	require.Equal(t, token.Identifier, toks[2].Kind)
}
