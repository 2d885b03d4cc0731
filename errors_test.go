package yu

import "testing"

// The messages are part of the user-visible contract: the REPL prints them
// verbatim after "error: ".
func Test_EvalError_Messages(t *testing.T) {
	for want, err := range map[string]error{
		"type is invalid":         errInvalidType(),
		"arity is wrong":          errWrongArity(),
		"expression not callable": errNotCallable(),
		"'x' is undefined":        errUndefined("x"),
	} {
		if got := err.Error(); got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
	}
}
