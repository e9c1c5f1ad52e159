package tokenizer

import (
	"bytes"

	"github.com/aledsdavies/pytokens/token"
)

// scanIndent consumes a leading whitespace run at column zero and, per
// spec §4.6, either emits a Whitespace/Indent token directly, schedules a
// run of Dedents via dedentCounter, or declines (handled=false) so the
// caller resumes ordinary tokenizing.
func (t *Tokenizer) scanIndent() (tok token.Token, handled bool, err error) {
	startIndex := t.currentIndex
	sawWhitespace := false
	sawTabOrSpace := false

	for t.inBounds() {
		ch := t.source[t.currentIndex]
		if !isWhitespaceByte(ch) {
			break
		}
		t.advance()
		sawWhitespace = true
		if ch == ' ' || ch == '\t' {
			sawTabOrSpace = true
		}
	}

	if !t.inBounds() {
		if t.currentIndex == startIndex {
			return token.Token{}, false, nil
		}
		return t.makeToken(token.Whitespace), true, nil
	}

	// A run of only VT/FF (no tabs or spaces) never carries
	// indentation meaning; it is consumed but ignored entirely.
	if sawWhitespace && !sawTabOrSpace {
		startIndex = t.currentIndex
	}

	next := t.peek()
	if next == '#' || next == '\\' || next == '\r' || next == '\n' {
		return t.makeToken(token.Whitespace), true, nil
	}

	newIndent := t.source[startIndex:t.currentIndex]
	var currentIndent []byte
	if len(t.indentStack) > 0 {
		currentIndent = t.indentStack[len(t.indentStack)-1]
	}

	switch {
	case len(newIndent) == len(currentIndent):
		if len(newIndent) == 0 {
			return token.Token{}, false, nil
		}
		if !bytes.Equal(newIndent, currentIndent) {
			return token.Token{}, false, t.fail(ErrInconsistentTabsAndSpaces)
		}
		return t.makeToken(token.Whitespace), true, nil

	case len(newIndent) > len(currentIndent):
		if len(currentIndent) > 0 && !bytes.Contains(newIndent, currentIndent) {
			return token.Token{}, false, t.fail(ErrInconsistentTabsAndSpaces)
		}
		stored := make([]byte, len(newIndent))
		copy(stored, newIndent)
		t.indentStack = append(t.indentStack, stored)
		return t.makeToken(token.Indent), true, nil

	default:
		for len(t.indentStack) > 0 {
			top := t.indentStack[len(t.indentStack)-1]
			if len(top) < len(newIndent) {
				return token.Token{}, false, t.fail(ErrDedentMismatch)
			}
			if len(top) == len(newIndent) {
				break
			}
			t.indentStack = t.indentStack[:len(t.indentStack)-1]
			t.dedentCounter++
		}
		if len(t.indentStack) == 0 && len(newIndent) > 0 {
			// Popped past every level without reaching this width, and the
			// outermost level (column 0) does not match it either.
			return token.Token{}, false, t.fail(ErrDedentMismatch)
		}
		return t.makeToken(token.Whitespace), true, nil
	}
}
