// Package exprtree demonstrates ways to model a small algebraic union in
// Go: a hand-tagged struct, node types behind an open interface, a sealed
// interface, and visitor/fold dispatch over the same node set.
package exprtree

// Expr is an arithmetic expression node. The unexported marker keeps the
// set of implementations inside this package; Accept is the hook the
// visitor rendition dispatches through.
type Expr interface {
	Accept(Visitor)
	isExpr()
}

// Number is a literal value.
type Number struct {
	Value float64
}

// Add evaluates to the sum of its operands.
type Add struct {
	Left, Right Expr
}

// Mul evaluates to the product of its operands.
type Mul struct {
	Left, Right Expr
}

// Sub evaluates to Left minus Right. It joined the node set after the
// others; the renditions narrate what its arrival did to each style.
type Sub struct {
	Left, Right Expr
}

func (Number) isExpr() {}
func (Add) isExpr()    {}
func (Mul) isExpr()    {}
func (Sub) isExpr()    {}
