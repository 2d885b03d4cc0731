package yu

import "testing"

func Test_Format_Atoms(t *testing.T) {
	for want, e := range map[string]Expr{
		"42":               Number(42),
		"3.14":             Number(3.14),
		"-0.5":             Number(-0.5),
		"foo":              Symbol("foo"),
		"()":               Nil,
		"<native begin>":   NativeVal(NativeBegin),
		"<native +>":       NativeVal(NativeAdd),
		"<function (x y)>": FunVal(&Fun{Params: []string{"x", "y"}}),
		"<function ()>":    FunVal(&Fun{}),
	} {
		if got := FormatExpr(e); got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
	}
}

func Test_Format_Lists(t *testing.T) {
	e := ListVal(FromSlice([]Expr{
		Symbol("+"),
		Number(1),
		ListVal(FromSlice([]Expr{Symbol("quote"), Symbol("x")})),
	}))
	if got := FormatExpr(e); got != "(+ 1 (quote x))" {
		t.Fatalf("got %q", got)
	}
}

// A read expression formats back to its canonical source text.
func Test_Format_ReadRoundTrip(t *testing.T) {
	for _, src := range []string{
		"(+ 1 2)",
		"(define inc (function (x) (+ x 1)))",
		"(quote (1 2 3))",
		"()",
	} {
		e := mustRead(t, src)
		if got := FormatExpr(e); got != src {
			t.Fatalf("round trip of %q produced %q", src, got)
		}
	}
}
