// Package tokenizer implements a byte-faithful, single-pass scanner for
// Python source, reproducing CPython's observable token stream: indent/
// dedent bookkeeping, f-string/t-string lexical structure, and line-
// continuation and bracket-nesting rules. The cmd/pytokens command wires it
// into a CLI.
package tokenizer

import (
	"errors"

	"github.com/aledsdavies/pytokens/token"
)

// ErrDone is returned by Next once the stream has emitted its single
// EndMarker token and is pulled again. A Tokenizer is not restartable; call
// Tokenize again for a fresh source.
var ErrDone = errors.New("tokenizer: token stream exhausted")

// Option configures a Tokenizer at construction time. Both options are
// zero-cost when unset, following the teacher's functional-options
// (LexerOpt/LexerConfig) pattern.
type Option func(*config)

type config struct {
	telemetry bool
	debug     bool
}

// WithTelemetry enables per-Kind token counts, retrievable via Telemetry.
func WithTelemetry() Option {
	return func(c *config) { c.telemetry = true }
}

// WithDebug enables step-by-step trace events, retrievable via DebugEvents.
func WithDebug() Option {
	return func(c *config) { c.debug = true }
}

// KindTelemetry holds the observed count for one token.Kind.
type KindTelemetry struct {
	Kind  token.Kind
	Count int
}

// DebugEvent records one internal step of the scan, for development tracing.
type DebugEvent struct {
	Event  string
	Offset int
	Line   int
	Col    int
}

// Tokenizer is a single-pull, non-restartable scanner over one source
// buffer. It exclusively owns all position, indent, bracket, and f-string
// state; emitted Tokens are value records that do not alias it. A Tokenizer
// must not be shared across goroutines and the source must not be mutated
// while it is in use.
type Tokenizer struct {
	source []byte

	currentIndex, prevIndex           int
	line, prevLine                    int
	byteOffset, prevByteOffset        int
	allWhitespaceOnThisLine           bool

	bracketLevel      int
	bracketLevelStack []int

	indentStack  [][]byte
	dedentCounter int

	fstr *fstringMachine

	started  bool
	prevKind token.Kind

	telemetry map[token.Kind]*KindTelemetry
	debug     []DebugEvent
	cfg       config
}

// Tokenize constructs a Tokenizer over source. This is the library's single
// public entry point; pull tokens from it with Next until it returns
// ErrDone.
func Tokenize(source string, opts ...Option) *Tokenizer {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tokenizer{
		source:                  []byte(source),
		line:                    1,
		prevLine:                1,
		allWhitespaceOnThisLine: true,
		fstr:                    newFStringMachine(),
		cfg:                     cfg,
	}
	if cfg.telemetry {
		t.telemetry = make(map[token.Kind]*KindTelemetry)
	}
	return t
}

// Telemetry returns a copy of the per-Kind token counts, or nil if
// WithTelemetry was not passed to Tokenize.
func (t *Tokenizer) Telemetry() map[token.Kind]*KindTelemetry {
	if t.telemetry == nil {
		return nil
	}
	out := make(map[token.Kind]*KindTelemetry, len(t.telemetry))
	for k, v := range t.telemetry {
		cp := *v
		out[k] = &cp
	}
	return out
}

// DebugEvents returns a copy of the recorded trace events, or nil if
// WithDebug was not passed to Tokenize.
func (t *Tokenizer) DebugEvents() []DebugEvent {
	if !t.cfg.debug {
		return nil
	}
	out := make([]DebugEvent, len(t.debug))
	copy(out, t.debug)
	return out
}

func (t *Tokenizer) recordDebug(event string) {
	if !t.cfg.debug {
		return
	}
	t.debug = append(t.debug, DebugEvent{Event: event, Offset: t.currentIndex, Line: t.line, Col: t.byteOffset})
}

func (t *Tokenizer) recordTelemetry(kind token.Kind) {
	if t.telemetry == nil {
		return
	}
	entry, ok := t.telemetry[kind]
	if !ok {
		entry = &KindTelemetry{Kind: kind}
		t.telemetry[kind] = entry
	}
	entry.Count++
}

// inBounds reports whether currentIndex addresses a real byte of source.
func (t *Tokenizer) inBounds() bool {
	return t.currentIndex < len(t.source)
}

func (t *Tokenizer) peek() byte {
	return t.source[t.currentIndex]
}

func (t *Tokenizer) peekAt(offset int) (byte, bool) {
	idx := t.currentIndex + offset
	if idx < 0 || idx >= len(t.source) {
		return 0, false
	}
	return t.source[idx], true
}

func (t *Tokenizer) advance() {
	t.currentIndex++
	t.byteOffset++
}

func (t *Tokenizer) advanceBy(n int) {
	t.currentIndex += n
	t.byteOffset += n
}

func (t *Tokenizer) nextLine() {
	t.line++
	t.byteOffset = 0
	t.allWhitespaceOnThisLine = true
}

// advanceCheckNewline advances one byte, treating a bare LF as a line break
// (used while scanning string/f-string bodies that span lines).
func (t *Tokenizer) advanceCheckNewline() {
	if t.source[t.currentIndex] == '\n' {
		t.currentIndex++
		t.nextLine()
		return
	}
	t.advance()
}

// match reports whether any of options appears literally at currentIndex.
func (t *Tokenizer) match(options ...string) bool {
	for _, opt := range options {
		end := t.currentIndex + len(opt)
		if end > len(t.source) {
			continue
		}
		if string(t.source[t.currentIndex:end]) == opt {
			return true
		}
	}
	return false
}

// matchFold is match with ASCII case-insensitive comparison.
func (t *Tokenizer) matchFold(options ...string) bool {
	for _, opt := range options {
		end := t.currentIndex + len(opt)
		if end > len(t.source) {
			continue
		}
		if asciiEqualFold(t.source[t.currentIndex:end], opt) {
			return true
		}
	}
	return false
}

func asciiEqualFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		bc, sc := b[i], s[i]
		if 'A' <= bc && bc <= 'Z' {
			bc += 'a' - 'A'
		}
		if 'A' <= sc && sc <= 'Z' {
			sc += 'a' - 'A'
		}
		if bc != sc {
			return false
		}
	}
	return true
}

// makeToken closes out the token starting at prevIndex/prevLine/
// prevByteOffset and ending at the tokenizer's current position, then
// advances the "previous" bookkeeping for the next call.
func (t *Tokenizer) makeToken(kind token.Kind) token.Token {
	tok := token.Token{
		Kind: kind,
		Start: token.Position{
			Line:   t.prevLine,
			Col:    t.prevByteOffset,
			Offset: t.prevIndex,
		},
		End: token.Position{
			Line:   t.line,
			Col:    t.byteOffset,
			Offset: t.currentIndex,
		},
	}

	switch kind {
	case token.Newline, token.NL:
		t.nextLine()
	case token.Whitespace, token.Comment:
		// all_whitespace_on_this_line unaffected
	default:
		t.allWhitespaceOnThisLine = false
	}

	t.recordTelemetry(kind)
	t.started = true
	t.prevKind = kind
	t.prevIndex = t.currentIndex
	t.prevLine = t.line
	t.prevByteOffset = t.byteOffset
	return tok
}

// endmarker emits a DEDENT for each remaining indent level before finally
// emitting the single terminal EndMarker token.
func (t *Tokenizer) endmarker() token.Token {
	if len(t.indentStack) > 0 {
		t.indentStack = t.indentStack[:len(t.indentStack)-1]
		return t.makeToken(token.Dedent)
	}
	return t.makeToken(token.EndMarker)
}

// Next returns the next Token in the stream, or ErrDone once EndMarker has
// already been emitted and pulled again, or a *Error on a tokenization
// failure (after which the Tokenizer must not be pulled again).
func (t *Tokenizer) Next() (token.Token, error) {
	t.recordDebug("enter_next")

	if t.started && t.prevKind == token.EndMarker {
		return token.Token{}, ErrDone
	}

	// EOF handling (spec §4.1 steps 2-3).
	if t.currentIndex == len(t.source) {
		if !t.started {
			return t.endmarker(), nil
		}
		switch t.prevKind {
		case token.Newline, token.NL, token.Dedent:
			return t.endmarker(), nil
		default:
			return t.newlineToken(), nil
		}
	}
	if t.currentIndex > len(t.source) {
		return t.endmarker(), nil
	}

	// f-string delegation (step 4): any non-expression f-string state owns
	// the next step.
	if t.fstr.state != notFString && t.fstr.state != inFStringExpr {
		return t.scanFString()
	}

	current := t.peek()

	// Comment (step 5).
	if current == '#' {
		for t.inBounds() && t.peek() != '\n' && t.peek() != '\r' {
			t.advance()
		}
		return t.makeToken(token.Comment), nil
	}

	// Drain pending dedents (step 6).
	if t.dedentCounter > 0 {
		t.dedentCounter--
		return t.makeToken(token.Dedent), nil
	}

	// Logical line break (step 7).
	if t.isNewlineAt() {
		return t.newlineToken(), nil
	}

	// Line continuation (step 8).
	if current == '\\' {
		return t.scanLineContinuation()
	}

	// Bare CR quirk (step 9).
	if current == '\r' {
		t.advance()
		if t.inBounds() {
			t.advance()
			return t.makeToken(token.Op), nil
		}
		return t.newlineToken(), nil
	}

	// Indentation (step 10), only at column zero, depth zero, not in an
	// f-string.
	if t.byteOffset == 0 && t.bracketLevel == 0 && t.fstr.state == notFString {
		if tok, handled, err := t.scanIndent(); err != nil {
			return token.Token{}, err
		} else if handled {
			return tok, nil
		}
	}

	// Whitespace run (step 11).
	if isWhitespaceByte(current) {
		for t.inBounds() && isWhitespaceByte(t.peek()) {
			t.advance()
		}
		return t.makeToken(token.Whitespace), nil
	}

	// Operators and brackets (step 12).
	if isOperatorStart(current) {
		return t.scanOperator(current)
	}

	// Numbers / Ellipsis-vs-dot (step 13).
	if current == '.' || isASCIIDigit(current) {
		return t.scanNumberStart()
	}

	// String / f-string / t-string literal (step 14).
	if t.looksLikeStringStart() {
		return t.scanStringOrFString()
	}

	// Identifier (step 15).
	return t.scanIdentifier()
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\x0b' || b == '\x0c'
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
