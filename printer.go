// printer.go
//
// Debug-style rendering of expressions, one line per value. Used by the
// REPL to echo results and by tests to compare shapes.

package yu

import (
	"strconv"
	"strings"
)

// FormatExpr renders e in the source notation: numbers in shortest form,
// symbols bare, lists parenthesized. Closures and natives have no source
// notation and render as bracketed descriptions.
func FormatExpr(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e.Tag {
	case TagNumber:
		b.WriteString(strconv.FormatFloat(e.Data.(float64), 'g', -1, 64))
	case TagSymbol:
		b.WriteString(e.Data.(string))
	case TagNative:
		b.WriteString("<native ")
		b.WriteString(e.Data.(Native).String())
		b.WriteByte('>')
	case TagFun:
		fn := e.Data.(*Fun)
		b.WriteString("<function (")
		b.WriteString(strings.Join(fn.Params, " "))
		b.WriteString(")>")
	case TagList:
		b.WriteByte('(')
		for l := e.Data.(*List); l != nil; l = l.Tail {
			writeExpr(b, l.Head)
			if l.Tail != nil {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(')')
	default:
		b.WriteString("<unknown>")
	}
}
