// Package token defines the closed set of lexical token kinds produced by
// the tokenizer, and the Token record itself.
package token

import "fmt"

// Kind is a closed enumeration of lexical token categories. The sub-range
// Semicolon...Op (inclusive) are "operator" kinds; see IsOperator.
type Kind int

const (
	Whitespace Kind = iota
	Indent
	Dedent
	Newline // semantically significant line terminator
	NL      // non-significant line terminator
	Comment

	// Operator sub-range: Semicolon...Op inclusive.
	Semicolon
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Colon
	Op

	Identifier
	Number
	String
	FStringStart
	FStringMiddle
	FStringEnd
	TStringStart
	TStringMiddle
	TStringEnd

	EndMarker
)

var kindNames = [...]string{
	Whitespace:    "whitespace",
	Indent:        "indent",
	Dedent:        "dedent",
	Newline:       "newline",
	NL:            "nl",
	Comment:       "comment",
	Semicolon:     "semicolon",
	LParen:        "lparen",
	RParen:        "rparen",
	LBracket:      "lbracket",
	RBracket:      "rbracket",
	LBrace:        "lbrace",
	RBrace:        "rbrace",
	Colon:         "colon",
	Op:            "op",
	Identifier:    "identifier",
	Number:        "number",
	String:        "string",
	FStringStart:  "fstring_start",
	FStringMiddle: "fstring_middle",
	FStringEnd:    "fstring_end",
	TStringStart:  "tstring_start",
	TStringMiddle: "tstring_middle",
	TStringEnd:    "tstring_end",
	EndMarker:     "endmarker",
}

// String returns the lowercase, spec-mandated name for the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator reports whether kind falls in the Semicolon...Op sub-range.
func IsOperator(kind Kind) bool {
	return kind >= Semicolon && kind <= Op
}

// ParseKind looks up a Kind by its String() name (e.g. "fstring_start"). It
// is the inverse of String, used by the CLI to validate the --kind flag.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// KindNames returns every valid Kind name, in declaration order.
func KindNames() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames[:])
	return out
}

// Position locates a point in the source: a one-indexed line, a zero-indexed
// column measured in bytes from the start of that line, and the absolute
// byte offset into the source.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Token is a value record describing one lexeme's kind and span. It does not
// alias tokenizer state; once returned from Next it is safe to keep.
type Token struct {
	Kind  Kind
	Start Position
	End   Position
}

// Lexeme returns the source bytes this token spans. Zero-width synthetic
// tokens (Dedent, EndMarker) and a synthesized trailing Newline/NL past the
// end of source return nil, since their span does not index real bytes.
func (t Token) Lexeme(source []byte) []byte {
	if t.Start.Offset == t.End.Offset {
		return nil
	}
	if t.End.Offset > len(source) {
		return nil
	}
	return source[t.Start.Offset:t.End.Offset]
}
