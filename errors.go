// errors.go
//
// Typed evaluation errors. Any error aborts the evaluation in progress and
// surfaces through every enclosing call; the REPL catches per line, prints
// "error: <message>", and continues the session.

package yu

import "fmt"

// ErrKind discriminates evaluation failures.
type ErrKind int

const (
	// InvalidType: an operand has the wrong tag for the operation (e.g.
	// define's first operand is not a symbol literal, an operator operand
	// is not a number).
	InvalidType ErrKind = iota
	// WrongArity: a call received an operand count other than required.
	WrongArity
	// UndefinedSymbol: a symbol is neither reserved nor bound in the
	// reachable frame chain.
	UndefinedSymbol
	// NotCallable: the evaluated head of a list is neither a function nor
	// a native.
	NotCallable
)

// EvalError is the error type returned by all evaluation entry points.
// Symbol is set only for UndefinedSymbol.
type EvalError struct {
	Kind   ErrKind
	Symbol string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case InvalidType:
		return "type is invalid"
	case WrongArity:
		return "arity is wrong"
	case UndefinedSymbol:
		return fmt.Sprintf("'%s' is undefined", e.Symbol)
	case NotCallable:
		return "expression not callable"
	default:
		return "unknown evaluation error"
	}
}

func errInvalidType() error { return &EvalError{Kind: InvalidType} }

func errWrongArity() error { return &EvalError{Kind: WrongArity} }

func errNotCallable() error { return &EvalError{Kind: NotCallable} }

func errUndefined(name string) error {
	return &EvalError{Kind: UndefinedSymbol, Symbol: name}
}
