package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/aledsdavies/pytokens/token"
)

// identStartTable/identPartTable are the ASCII fast path for identifier
// scanning, built the way the teacher's runtime/lexer builds isIdentStart/
// isIdentPart: a precomputed [128]bool indexed by byte value, falling back
// to Unicode category and property tables for anything above ASCII.
var (
	identStartTable [128]bool
	identPartTable  [128]bool
)

func init() {
	for ch := 0; ch < 128; ch++ {
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		identStartTable[ch] = isLetter || ch == '_'
		identPartTable[ch] = isLetter || ch == '_' || (ch >= '0' && ch <= '9')
	}
}

func isIdentStart(r rune) bool {
	if r < 128 {
		return identStartTable[r]
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIdentPart(r rune) bool {
	if r < 128 {
		return identPartTable[r]
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) || unicode.Is(unicode.Other_ID_Continue, r)
}

// scanIdentifier consumes one identifier-start rune followed by the maximal
// run of identifier-continue runes at the cursor (spec §4.8), raising
// ErrUnexpectedCharacter if the byte at the cursor does not begin an
// identifier. Start and continue sets are built from Unicode general
// categories plus Other_ID_Start/Other_ID_Continue, which approximates
// XID_Start/XID_Continue; the NFKC-based exclusions of the XID sets are not
// applied.
func (t *Tokenizer) scanIdentifier() (token.Token, error) {
	first, size := utf8.DecodeRune(t.source[t.currentIndex:])
	if first == utf8.RuneError && size <= 1 {
		return token.Token{}, t.fail(ErrUnexpectedCharacter)
	}
	if !isIdentStart(first) {
		return token.Token{}, t.fail(ErrUnexpectedCharacter)
	}
	t.advanceBy(size)

	for t.inBounds() {
		r, n := utf8.DecodeRune(t.source[t.currentIndex:])
		if r == utf8.RuneError && n <= 1 {
			break
		}
		if !isIdentPart(r) {
			break
		}
		t.advanceBy(n)
	}
	return t.makeToken(token.Identifier), nil
}
