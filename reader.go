// reader.go
//
// Reads one expression from a line of source text. Atoms are bare tokens:
// anything strconv accepts as a float is a number, everything else is a
// symbol. Lists are parenthesized whitespace-separated sequences; () is the
// empty list. Read errors are distinct from evaluation errors so the front
// end can tell a malformed line from a failed one.

package yu

import (
	"strconv"
	"strings"
	"unicode"
)

// ReadError reports a malformed input line.
type ReadError struct {
	Msg string
}

func (e *ReadError) Error() string { return e.Msg }

func errRead(msg string) error { return &ReadError{Msg: msg} }

// Read parses exactly one expression from src. Input after the expression
// (other than whitespace) is an error.
func Read(src string) (Expr, error) {
	r := &reader{src: src}
	expr, err := r.readExpr()
	if err != nil {
		return Expr{}, err
	}
	r.skipSpace()
	if !r.eof() {
		return Expr{}, errRead("unexpected input after expression")
	}
	return expr, nil
}

type reader struct {
	src string
	pos int
}

func (r *reader) eof() bool { return r.pos >= len(r.src) }

func (r *reader) peek() byte { return r.src[r.pos] }

func (r *reader) skipSpace() {
	for !r.eof() && unicode.IsSpace(rune(r.src[r.pos])) {
		r.pos++
	}
}

func (r *reader) readExpr() (Expr, error) {
	r.skipSpace()
	if r.eof() {
		return Expr{}, errRead("unexpected end of input")
	}
	switch r.peek() {
	case '(':
		r.pos++
		return r.readList()
	case ')':
		return Expr{}, errRead("unexpected ')'")
	default:
		return r.readAtom(), nil
	}
}

// readList reads elements up to the matching ')'. Elements are collected in
// order and consed up back-to-front so tails are shared, never mutated.
func (r *reader) readList() (Expr, error) {
	var elems []Expr
	for {
		r.skipSpace()
		if r.eof() {
			return Expr{}, errRead("unexpected end of input")
		}
		if r.peek() == ')' {
			r.pos++
			return ListVal(FromSlice(elems)), nil
		}
		e, err := r.readExpr()
		if err != nil {
			return Expr{}, err
		}
		elems = append(elems, e)
	}
}

func (r *reader) readAtom() Expr {
	start := r.pos
	for !r.eof() && !isDelimiter(r.peek()) {
		r.pos++
	}
	token := r.src[start:r.pos]
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return Number(f)
	}
	return Symbol(token)
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || unicode.IsSpace(rune(c))
}

// IsBlank reports whether a line holds no expression at all (the REPL skips
// such lines instead of reporting an error).
func IsBlank(line string) bool { return strings.TrimSpace(line) == "" }
