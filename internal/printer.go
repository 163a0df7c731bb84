package internal

import "strings"

// Printer renders an expression as fully parenthesized prefix notation
type Printer struct{}

// Print returns the prefix form of e
func (p Printer) Print(e Expr) string {
	return Walk[string](p, e)
}

func (p Printer) VisitBinaryExpr(left Expr, operator Token, right Expr) string {
	return p.parenthesize(operator.Lexeme, left, right)
}

func (p Printer) VisitGroupingExpr(expression Expr) string {
	return p.parenthesize("group", expression)
}

// VisitLiteralExpr prints nil as an empty string, the same as "".
func (p Printer) VisitLiteralExpr(value Value) string {
	return value.String()
}

func (p Printer) VisitUnaryExpr(operator Token, right Expr) string {
	return p.parenthesize(operator.Lexeme, right)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var out strings.Builder
	out.WriteByte('(')
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteByte(' ')
		out.WriteString(Walk[string](p, e))
	}
	out.WriteByte(')')
	return out.String()
}

// RPNPrinter renders an expression in reverse Polish notation. Groupings
// disappear and unary minus is written as "~" to keep it apart from
// subtraction.
type RPNPrinter struct{}

// Print returns the postfix form of e
func (p RPNPrinter) Print(e Expr) string {
	return Walk[string](p, e)
}

func (p RPNPrinter) VisitBinaryExpr(left Expr, operator Token, right Expr) string {
	return Walk[string](p, left) + " " + Walk[string](p, right) + " " + operator.Lexeme
}

func (p RPNPrinter) VisitGroupingExpr(expression Expr) string {
	return Walk[string](p, expression)
}

func (p RPNPrinter) VisitLiteralExpr(value Value) string {
	if s, ok := value.AsString(); ok {
		return `"` + s + `"`
	}
	if value.Kind() == NullValue {
		return "nil"
	}
	return value.String()
}

func (p RPNPrinter) VisitUnaryExpr(operator Token, right Expr) string {
	op := operator.Lexeme
	if operator.Type == MINUS {
		op = "~"
	}
	return Walk[string](p, right) + " " + op
}

var _ Visitor[string] = Printer{}
var _ Visitor[string] = RPNPrinter{}
