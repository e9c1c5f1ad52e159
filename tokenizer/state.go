package tokenizer

import "errors"

// errUnderflow is the internal sentinel returned by popQuote when no quote
// is active; callers translate it into an *Error via Tokenizer.fail.
var errUnderflow = errors.New("fstring quote stack underflow")

// fstringState is the f-string/t-string sub-state machine. It is kept as an
// explicit pushdown of state values rather than recursive calls, so the
// top-level Tokenizer.Next dispatch stays the single place that owns
// position and bracket tracking — mirroring the context-stack shape of a
// nested lexical mode machine rather than a recursive-descent one.
type fstringState int

const (
	notFString fstringState = iota
	atFStringMiddle
	atFStringLBrace
	inFStringExpr
	inFStringExprModifier
	atFStringEnd
)

// fstringFlavor distinguishes f-strings from t-strings; both share this
// state machine and differ only in which Kind gets emitted at the START/
// MIDDLE/END boundaries.
type fstringFlavor int

const (
	flavorF fstringFlavor = iota
	flavorT
)

// fstringMachine owns the f-string state stack, the flavor of the
// currently-open f-/t-string, and the stack of active quote delimiters.
type fstringMachine struct {
	state fstringState
	stack []fstringState

	flavor      fstringFlavor
	flavorStack []fstringFlavor

	quote      string
	quoteStack []string
}

func newFStringMachine() *fstringMachine {
	return &fstringMachine{state: notFString}
}

func (m *fstringMachine) pushQuote(quote string, flavor fstringFlavor) {
	if m.quote != "" {
		m.quoteStack = append(m.quoteStack, m.quote)
		m.flavorStack = append(m.flavorStack, m.flavor)
	}
	m.quote = quote
	m.flavor = flavor
}

func (m *fstringMachine) popQuote() error {
	if m.quote == "" {
		return errUnderflow
	}
	if len(m.quoteStack) == 0 {
		m.quote = ""
		return nil
	}
	m.quote = m.quoteStack[len(m.quoteStack)-1]
	m.quoteStack = m.quoteStack[:len(m.quoteStack)-1]
	m.flavor = m.flavorStack[len(m.flavorStack)-1]
	m.flavorStack = m.flavorStack[:len(m.flavorStack)-1]
	return nil
}

// enter pushes the prior state (to be restored on leave) and transitions
// into the template-scanning state.
func (m *fstringMachine) enter() {
	m.stack = append(m.stack, m.state)
	m.state = atFStringMiddle
}

// leave restores the state active before this f-string was entered.
func (m *fstringMachine) leave() {
	m.state = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
}

// consumeMiddleForLBrace transitions out of template scanning into the
// "about to consume a {" state. If the current state is a format-spec
// modifier, that frame is pushed so consumeRBrace can return to it.
func (m *fstringMachine) consumeMiddleForLBrace() {
	if m.state == inFStringExprModifier {
		m.stack = append(m.stack, m.state)
	}
	m.state = atFStringLBrace
}

func (m *fstringMachine) consumeMiddleForEnd() {
	m.state = atFStringEnd
}

func (m *fstringMachine) consumeLBrace() {
	m.state = inFStringExpr
}

// consumeRBrace returns from an expression hole to template scanning, or
// back to an enclosing format-spec modifier if one was pushed.
func (m *fstringMachine) consumeRBrace() {
	if len(m.stack) > 0 && m.stack[len(m.stack)-1] == inFStringExprModifier {
		m.state = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	} else {
		m.state = atFStringMiddle
	}
}

func (m *fstringMachine) consumeColon() {
	m.state = inFStringExprModifier
}
