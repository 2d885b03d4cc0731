// env.go
//
// Lexical environment frames. Frames form a chain through parent; lookups
// walk parent-ward, definitions land in the current frame only.

package yu

// Env is one lexical frame: a binding table plus an optional parent.
type Env struct {
	parent *Env
	table  map[string]Expr
}

// NewEnv creates an empty frame with the given parent (nil for the global
// frame).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Expr)}
}

// Define binds name to v in this frame, shadowing any outer binding.
// It never touches a parent frame. There is no deletion; bindings live for
// the frame's lifetime.
func (e *Env) Define(name string, v Expr) {
	e.table[name] = v
}

// Get returns the nearest visible binding for name, walking from this frame
// up through its parents.
func (e *Env) Get(name string) (Expr, bool) {
	for ; e != nil; e = e.parent {
		if v, ok := e.table[name]; ok {
			return v, true
		}
	}
	return Expr{}, false
}
