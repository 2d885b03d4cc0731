package yu

import "testing"

func mustRead(t *testing.T, src string) Expr {
	t.Helper()
	e, err := Read(src)
	if err != nil {
		t.Fatalf("read error for %q: %v", src, err)
	}
	return e
}

func wantReadError(t *testing.T, src string) {
	t.Helper()
	_, err := Read(src)
	if err == nil {
		t.Fatalf("want read error for %q, got none", src)
	}
	if _, ok := err.(*ReadError); !ok {
		t.Fatalf("want *ReadError for %q, got %T: %v", src, err, err)
	}
}

func Test_Read_Numbers(t *testing.T) {
	for src, want := range map[string]float64{
		"42":   42,
		"-1":   -1,
		"3.14": 3.14,
		"1e3":  1000,
		"-0.5": -0.5,
		"+2":   2,
	} {
		e := mustRead(t, src)
		if e.Tag != TagNumber || e.Data.(float64) != want {
			t.Fatalf("%q: want number %g, got %#v", src, want, e)
		}
	}
}

func Test_Read_Symbols(t *testing.T) {
	for _, src := range []string{"foo", "+", "-", "*", "/", "a-b", "define", "1x"} {
		e := mustRead(t, src)
		if e.Tag != TagSymbol || e.Data.(string) != src {
			t.Fatalf("%q: want symbol, got %#v", src, e)
		}
	}
}

func Test_Read_EmptyList(t *testing.T) {
	if !Equal(mustRead(t, "()"), Nil) {
		t.Fatal("() should read as the empty list")
	}
	if !Equal(mustRead(t, "(  )"), Nil) {
		t.Fatal("whitespace inside () is ignored")
	}
}

func Test_Read_FlatList(t *testing.T) {
	e := mustRead(t, "(+ 1 2)")
	want := ListVal(FromSlice([]Expr{Symbol("+"), Number(1), Number(2)}))
	if !Equal(e, want) {
		t.Fatalf("want (+ 1 2), got %s", FormatExpr(e))
	}
}

func Test_Read_NestedList(t *testing.T) {
	e := mustRead(t, "(define inc (function (x) (+ x 1)))")
	want := ListVal(FromSlice([]Expr{
		Symbol("define"),
		Symbol("inc"),
		ListVal(FromSlice([]Expr{
			Symbol("function"),
			ListVal(FromSlice([]Expr{Symbol("x")})),
			ListVal(FromSlice([]Expr{Symbol("+"), Symbol("x"), Number(1)})),
		})),
	}))
	if !Equal(e, want) {
		t.Fatalf("nested read mismatch, got %s", FormatExpr(e))
	}
}

func Test_Read_SurroundingWhitespace(t *testing.T) {
	e := mustRead(t, "  ( + 1\t2 )  ")
	want := ListVal(FromSlice([]Expr{Symbol("+"), Number(1), Number(2)}))
	if !Equal(e, want) {
		t.Fatalf("want (+ 1 2), got %s", FormatExpr(e))
	}
}

func Test_Read_Errors(t *testing.T) {
	wantReadError(t, "")
	wantReadError(t, "   ")
	wantReadError(t, ")")
	wantReadError(t, "(+ 1 2")
	wantReadError(t, "(+ 1))")
	wantReadError(t, "1 2")
}

func Test_Read_IsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t ") {
		t.Fatal("blank lines should be blank")
	}
	if IsBlank("x") {
		t.Fatal("non-blank line misreported")
	}
}
