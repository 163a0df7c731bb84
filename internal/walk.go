package internal

//go:generate go run ../cmd/ast expr.go

// Walk runs visitor v over e and returns whatever the visitor produced
// for the root node. Visitors recurse by calling Walk on the children
// they are handed. A nil expression yields the zero value.
func Walk[T any](v Visitor[T], e Expr) T {
	w := &walker[T]{visitor: v}
	if e != nil {
		e.accept(w)
	}
	return w.result
}
