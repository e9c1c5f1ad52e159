package tokenizer

import "github.com/aledsdavies/pytokens/token"

// scanNumberStart dispatches on the two-byte prefix at the cursor to the
// binary/octal/hex/decimal scanner (spec §4.7).
func (t *Tokenizer) scanNumberStart() (token.Token, error) {
	if t.match("0b", "0B") {
		return t.scanRadixLiteral(isBinDigit), nil
	}
	if t.match("0o", "0O") {
		return t.scanRadixLiteral(isOctDigit), nil
	}
	if t.match("0x", "0X") {
		return t.scanRadixLiteral(isHexDigit), nil
	}
	return t.scanDecimal(), nil
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
func isHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanRadixLiteral scans 0b/0o/0x literals: digits (of the given radix) and
// underscores liberally permitted, with the quirk-preserved optional
// `e[-]?` tail followed by more digits (spec §4.7, §9(b)).
func (t *Tokenizer) scanRadixLiteral(isDigit func(byte) bool) token.Token {
	t.advanceBy(2) // jump over "0b"/"0o"/"0x"

	digitsOrUnderscore := func() {
		for t.inBounds() && (isDigit(t.peek()) || t.peek() == '_') {
			t.advance()
		}
	}

	digitsOrUnderscore()
	if t.inBounds() && (t.peek() == 'e' || t.peek() == 'E') {
		t.advance()
		if t.inBounds() && t.peek() == '-' {
			t.advance()
		}
		digitsOrUnderscore()
	}
	return t.makeToken(token.Number)
}

// scanDecimal scans decimal integer/float/scientific/complex literals, the
// Ellipsis operator, and the lone '.' operator (spec §4.7).
func (t *Tokenizer) scanDecimal() token.Token {
	digitBeforeDecimal := false
	if t.inBounds() && isASCIIDigit(t.peek()) {
		digitBeforeDecimal = true
		t.advance()
	}

	// TODO: too lax; "1__2" tokenizes as one number (preserved quirk, §9(a)).
	for t.inBounds() && (isASCIIDigit(t.peek()) || t.peek() == '_') {
		t.advance()
	}

	if t.inBounds() && t.peek() == '.' {
		t.advance()
	}

	for t.inBounds() && (isASCIIDigit(t.peek()) || (t.peek() == '_' && isASCIIDigit(t.source[t.currentIndex-1]))) {
		t.advance()
	}

	digitBeforePos := digitBeforeDecimal || (t.currentIndex > 0 && isASCIIDigit(t.source[t.currentIndex-1]))
	if digitBeforePos && t.currentIndex+1 < len(t.source) && (t.peek() == 'e' || t.peek() == 'E') {
		next, _ := t.peekAt(1)
		nextIsDigit := isASCIIDigit(next)
		nextIsSignedDigit := (next == '+' || next == '-') && t.currentIndex+2 < len(t.source) && isASCIIDigit(t.source[t.currentIndex+2])
		if nextIsDigit || nextIsSignedDigit {
			t.advance()
			t.advance()
		}
	}

	// TODO: too lax; "1__2" tokenizes as one number (preserved quirk, §9(a)).
	for t.inBounds() && (isASCIIDigit(t.peek()) || ((digitBeforeDecimal || isASCIIDigit(t.source[t.currentIndex-1])) && t.peek() == '_')) {
		t.advance()
	}

	// Complex suffix, requires at least one preceding digit.
	if t.inBounds() && (digitBeforeDecimal || isASCIIDigit(t.source[t.currentIndex-1])) && (t.peek() == 'j' || t.peek() == 'J') {
		t.advance()
	}

	if t.currentIndex-t.prevIndex == 1 && t.source[t.currentIndex-1] == '.' {
		if t.currentIndex+2 <= len(t.source) && string(t.source[t.currentIndex:t.currentIndex+2]) == ".." {
			t.advance()
			t.advance()
		}
		return t.makeToken(token.Op)
	}

	return t.makeToken(token.Number)
}
