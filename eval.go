// eval.go
//
// The evaluator reduces an Expr to an Expr against a chain of lexical
// frames. The frame is threaded through the recursion as an explicit
// argument, so every call sees exactly the frame it should and nothing has
// to be restored on any exit path, including failures.
//
// Scoping is lexical: a call frame's parent is the callee's captured frame,
// never the caller's. Parameters are bound sequentially and each argument is
// evaluated inside the frame being built, so argument i sees parameters
// 1..i-1 already bound.

package yu

// reserved maps the eight reserved names to their natives. It is consulted
// before any frame walk, so these names can never be shadowed by define.
var reserved = map[string]Native{
	"begin":    NativeBegin,
	"define":   NativeDefine,
	"function": NativeFunction,
	"quote":    NativeQuote,
	"+":        NativeAdd,
	"-":        NativeSub,
	"*":        NativeMul,
	"/":        NativeDiv,
}

// Interpreter evaluates expressions against a persistent global frame.
//
// The global frame is created once, at construction, and lives for the
// interpreter's lifetime; EvalSource and Eval bind into it directly, so
// definitions persist across calls (REPL-style). An interpreter supports one
// evaluation in flight at a time.
type Interpreter struct {
	Global *Env
}

// NewInterpreter returns an interpreter with a fresh, empty global frame.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv(nil)}
}

// EvalSource reads a single expression from src and evaluates it in the
// global frame. Read errors and evaluation errors are returned unmerged;
// both abort the line.
func (ip *Interpreter) EvalSource(src string) (Expr, error) {
	expr, err := Read(src)
	if err != nil {
		return Expr{}, err
	}
	return ip.Eval(expr)
}

// Eval evaluates a pre-read expression in the global frame.
func (ip *Interpreter) Eval(expr Expr) (Expr, error) {
	return ip.evalExpr(expr, ip.Global)
}

func (ip *Interpreter) evalExpr(expr Expr, env *Env) (Expr, error) {
	if expr.Tag == TagList {
		return ip.evalList(expr.Data.(*List), env)
	}
	return ip.evalAtom(expr, env)
}

// evalAtom: symbols resolve; every other atom is self-evaluating.
func (ip *Interpreter) evalAtom(atom Expr, env *Env) (Expr, error) {
	if atom.Tag == TagSymbol {
		return ip.evalSymbol(atom.Data.(string), env)
	}
	return atom, nil
}

func (ip *Interpreter) evalSymbol(name string, env *Env) (Expr, error) {
	if n, ok := reserved[name]; ok {
		return NativeVal(n), nil
	}
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	return Expr{}, errUndefined(name)
}

// evalList: the empty list evaluates to itself; a cons is a call.
func (ip *Interpreter) evalList(list *List, env *Env) (Expr, error) {
	if list == nil {
		return Nil, nil
	}

	head, err := ip.evalExpr(list.Head, env)
	if err != nil {
		return Expr{}, err
	}
	tail := list.Tail

	switch head.Tag {
	case TagNative:
		return ip.evalCallNative(head.Data.(Native), tail, env)
	case TagFun:
		return ip.evalCallFun(head.Data.(*Fun), tail)
	default:
		return Expr{}, errNotCallable()
	}
}

// evalCallFun applies a closure. The caller's frame plays no part: the call
// frame's parent is the captured frame, and arguments are evaluated inside
// the frame being built (sequential let*-style binding), so argument i sees
// parameters 1..i-1. That is the language's documented contract.
func (ip *Interpreter) evalCallFun(fn *Fun, tail *List) (Expr, error) {
	if tail.Len() != len(fn.Params) {
		return Expr{}, errWrongArity()
	}

	frame := NewEnv(fn.Env)
	arg := tail
	for _, param := range fn.Params {
		v, err := ip.evalExpr(arg.Head, frame)
		if err != nil {
			return Expr{}, err
		}
		frame.Define(param, v)
		arg = arg.Tail
	}

	return ip.evalExpr(fn.Body, frame)
}

func (ip *Interpreter) evalCallNative(n Native, tail *List, env *Env) (Expr, error) {
	switch n {
	case NativeBegin:
		return ip.evalCallBegin(tail, env)
	case NativeDefine:
		return ip.evalCallDefine(tail, env)
	case NativeFunction:
		return ip.evalCallFunction(tail, env)
	case NativeQuote:
		return ip.evalCallQuote(tail)
	default:
		return ip.evalCallOperator(n, tail, env)
	}
}

// begin: evaluate each operand in order, return the last value.
func (ip *Interpreter) evalCallBegin(tail *List, env *Env) (Expr, error) {
	if tail == nil {
		return Expr{}, errWrongArity()
	}
	var last Expr
	for l := tail; l != nil; l = l.Tail {
		v, err := ip.evalExpr(l.Head, env)
		if err != nil {
			return Expr{}, err
		}
		last = v
	}
	return last, nil
}

// define: bind a symbol literal to an evaluated value in the current frame,
// returning the value. Rebinding a reserved name is accepted here but the
// binding is unreachable (reserved resolution wins).
func (ip *Interpreter) evalCallDefine(tail *List, env *Env) (Expr, error) {
	if tail.Len() != 2 {
		return Expr{}, errWrongArity()
	}

	name, err := asSymbol(tail.Head)
	if err != nil {
		return Expr{}, err
	}
	second, _ := tail.Get(1)
	v, err := ip.evalExpr(second, env)
	if err != nil {
		return Expr{}, err
	}

	env.Define(name, v)
	return v, nil
}

// function: build a closure from a parameter list of symbols and an
// unevaluated body, capturing the current frame by reference.
func (ip *Interpreter) evalCallFunction(tail *List, env *Env) (Expr, error) {
	if tail.Len() != 2 {
		return Expr{}, errWrongArity()
	}

	paramList, err := asList(tail.Head)
	if err != nil {
		return Expr{}, err
	}
	body, _ := tail.Get(1)

	var params []string
	for l := paramList; l != nil; l = l.Tail {
		name, err := asSymbol(l.Head)
		if err != nil {
			return Expr{}, err
		}
		params = append(params, name)
	}

	return FunVal(&Fun{Params: params, Body: body, Env: env}), nil
}

// quote: return the single operand unevaluated.
func (ip *Interpreter) evalCallQuote(tail *List) (Expr, error) {
	if tail.Len() != 1 {
		return Expr{}, errWrongArity()
	}
	return tail.Head, nil
}

// evalCallOperator applies a binary arithmetic operator over numbers.
// A non-binary operand count yields 0, not an error; that is the language's
// long-standing contract and callers rely on it.
func (ip *Interpreter) evalCallOperator(n Native, tail *List, env *Env) (Expr, error) {
	if tail.Len() != 2 {
		return Number(0.0), nil
	}

	left, err := ip.evalExpr(tail.Head, env)
	if err != nil {
		return Expr{}, err
	}
	rightExpr, _ := tail.Get(1)
	right, err := ip.evalExpr(rightExpr, env)
	if err != nil {
		return Expr{}, err
	}

	l, err := asNumber(left)
	if err != nil {
		return Expr{}, err
	}
	r, err := asNumber(right)
	if err != nil {
		return Expr{}, err
	}

	// IEEE double semantics throughout; division by zero produces
	// infinities or NaN, never an error.
	switch n {
	case NativeAdd:
		return Number(l + r), nil
	case NativeSub:
		return Number(l - r), nil
	case NativeMul:
		return Number(l * r), nil
	default:
		return Number(l / r), nil
	}
}

func asSymbol(e Expr) (string, error) {
	if e.Tag != TagSymbol {
		return "", errInvalidType()
	}
	return e.Data.(string), nil
}

func asList(e Expr) (*List, error) {
	if e.Tag != TagList {
		return nil, errInvalidType()
	}
	return e.Data.(*List), nil
}

func asNumber(e Expr) (float64, error) {
	if e.Tag != TagNumber {
		return 0, errInvalidType()
	}
	return e.Data.(float64), nil
}
