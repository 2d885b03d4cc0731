// expr.go
//
// Runtime value model. The language is homoiconic: the same tagged Expr is
// both the AST produced by the reader and the value produced by the
// evaluator. An Expr is an atom (number, symbol, closure, native tag) or an
// immutable cons list.

package yu

// ExprTag enumerates the runtime kinds an Expr may hold.
// The tag determines which type Expr.Data holds (see Expr docs).
type ExprTag int

const (
	TagNumber ExprTag = iota // float64
	TagSymbol                // string
	TagFun                   // *Fun (closure)
	TagNative                // Native (built-in tag)
	TagList                  // *List (nil = empty list)
)

// Expr is the universal carrier for both code and data.
//
// Invariants:
//   - When Tag==TagList, Data is *List; a nil *List is the empty list.
//   - Atoms other than symbols evaluate to themselves.
type Expr struct {
	Tag  ExprTag
	Data any
}

// Atom constructors.
func Number(f float64) Expr   { return Expr{Tag: TagNumber, Data: f} }
func Symbol(name string) Expr { return Expr{Tag: TagSymbol, Data: name} }
func FunVal(f *Fun) Expr      { return Expr{Tag: TagFun, Data: f} }
func NativeVal(n Native) Expr { return Expr{Tag: TagNative, Data: n} }
func ListVal(l *List) Expr    { return Expr{Tag: TagList, Data: l} }

// Nil is the empty list.
var Nil = Expr{Tag: TagList, Data: (*List)(nil)}

// Native identifies a built-in form or operator addressed by reserved name.
// Natives carry no user-visible state.
type Native int

const (
	NativeBegin Native = iota
	NativeDefine
	NativeFunction
	NativeQuote
	NativeAdd
	NativeSub
	NativeMul
	NativeDiv
)

// IsOperator reports whether n is one of the four arithmetic operators.
func (n Native) IsOperator() bool { return n >= NativeAdd }

func (n Native) String() string {
	switch n {
	case NativeBegin:
		return "begin"
	case NativeDefine:
		return "define"
	case NativeFunction:
		return "function"
	case NativeQuote:
		return "quote"
	case NativeAdd:
		return "+"
	case NativeSub:
		return "-"
	case NativeMul:
		return "*"
	case NativeDiv:
		return "/"
	default:
		return "?"
	}
}

// Fun is a closure: parameter names in order, an unevaluated body, and the
// frame captured by reference at definition time. The captured frame is the
// live scope object, not a snapshot; bindings added to it before a call are
// visible to the body.
type Fun struct {
	Params []string
	Body   Expr
	Env    *Env
}

// List is a persistent singly-linked cons cell. A nil *List is the empty
// list. Tails are shared between lists and never mutated after construction,
// so traversal is finite and restartable.
type List struct {
	Head Expr
	Tail *List
}

// Cons prepends head to tail, sharing tail.
func Cons(head Expr, tail *List) *List { return &List{Head: head, Tail: tail} }

// Len walks the list and returns its length.
func (l *List) Len() int {
	n := 0
	for ; l != nil; l = l.Tail {
		n++
	}
	return n
}

// Get returns the i-th element head-to-tail. The second result is false when
// i is negative or past the end.
func (l *List) Get(i int) (Expr, bool) {
	if i < 0 {
		return Expr{}, false
	}
	for ; l != nil; l = l.Tail {
		if i == 0 {
			return l.Head, true
		}
		i--
	}
	return Expr{}, false
}

// Slice copies the elements into a new slice, head first.
func (l *List) Slice() []Expr {
	var out []Expr
	for ; l != nil; l = l.Tail {
		out = append(out, l.Head)
	}
	return out
}

// FromSlice builds a list holding the elements of xs in order. The input
// slice is not retained.
func FromSlice(xs []Expr) *List {
	var out *List
	for i := len(xs) - 1; i >= 0; i-- {
		out = Cons(xs[i], out)
	}
	return out
}

// Equal reports deep structural equality of two expressions. Closures
// compare by identity (same *Fun), everything else by value.
func Equal(a, b Expr) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNumber:
		return a.Data.(float64) == b.Data.(float64)
	case TagSymbol:
		return a.Data.(string) == b.Data.(string)
	case TagNative:
		return a.Data.(Native) == b.Data.(Native)
	case TagFun:
		return a.Data.(*Fun) == b.Data.(*Fun)
	case TagList:
		la := a.Data.(*List)
		lb := b.Data.(*List)
		for la != nil && lb != nil {
			if !Equal(la.Head, lb.Head) {
				return false
			}
			la, lb = la.Tail, lb.Tail
		}
		return la == nil && lb == nil
	default:
		return false
	}
}
