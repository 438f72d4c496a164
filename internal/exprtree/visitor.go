package exprtree

import (
	"context"
	"fmt"
	"strings"

	"goidioms/internal/ux"
)

// Visitor handles one node kind per method. Because Accept picks the
// method, a node kind added to the interface breaks every visitor at
// compile time, which no type switch manages.
type Visitor interface {
	VisitNumber(Number)
	VisitAdd(Add)
	VisitMul(Mul)
	VisitSub(Sub)
}

// Accept implements the double dispatch: the node, not a switch, names
// its own case.
func (n Number) Accept(v Visitor) { v.VisitNumber(n) }
func (n Add) Accept(v Visitor)    { v.VisitAdd(n) }
func (n Mul) Accept(v Visitor)    { v.VisitMul(n) }
func (n Sub) Accept(v Visitor)    { v.VisitSub(n) }

// evalVisitor carries the running value through the walk; visitor methods
// cannot return one.
type evalVisitor struct {
	result float64
}

func (v *evalVisitor) VisitNumber(n Number) { v.result = n.Value }
func (v *evalVisitor) VisitAdd(n Add)       { v.result = evalVisit(n.Left) + evalVisit(n.Right) }
func (v *evalVisitor) VisitMul(n Mul)       { v.result = evalVisit(n.Left) * evalVisit(n.Right) }
func (v *evalVisitor) VisitSub(n Sub)       { v.result = evalVisit(n.Left) - evalVisit(n.Right) }

func evalVisit(e Expr) float64 {
	var v evalVisitor
	e.Accept(&v)
	return v.result
}

// printVisitor shares one builder across the walk.
type printVisitor struct {
	b strings.Builder
}

func (v *printVisitor) VisitNumber(n Number) { fmt.Fprintf(&v.b, "%g", n.Value) }
func (v *printVisitor) VisitAdd(n Add)       { v.binary(n.Left, "+", n.Right) }
func (v *printVisitor) VisitMul(n Mul)       { v.binary(n.Left, "*", n.Right) }
func (v *printVisitor) VisitSub(n Sub)       { v.binary(n.Left, "-", n.Right) }

func (v *printVisitor) binary(left Expr, op string, right Expr) {
	v.b.WriteByte('(')
	left.Accept(v)
	v.b.WriteString(" " + op + " ")
	right.Accept(v)
	v.b.WriteByte(')')
}

func printVisit(e Expr) string {
	var v printVisitor
	e.Accept(&v)
	return v.b.String()
}

// Fold reduces a tree with one func per node kind; binary funcs receive
// their operands already folded. Filling the fields inline reads like the
// visitor pattern without the ceremony.
type Fold[T any] struct {
	Number func(float64) T
	Add    func(T, T) T
	Mul    func(T, T) T
	Sub    func(T, T) T
}

// Apply runs the fold bottom-up.
func (f Fold[T]) Apply(e Expr) T {
	switch n := e.(type) {
	case Number:
		return f.Number(n.Value)
	case Add:
		return f.Add(f.Apply(n.Left), f.Apply(n.Right))
	case Mul:
		return f.Mul(f.Apply(n.Left), f.Apply(n.Right))
	case Sub:
		return f.Sub(f.Apply(n.Left), f.Apply(n.Right))
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

func runVisitor(ctx context.Context, p *ux.Printer) error {
	// The same (10 - 3) * (2 + 4) tree as the sealed rendition.
	expr := Mul{
		Left:  Sub{Left: Number{10}, Right: Number{3}},
		Right: Add{Left: Number{2}, Right: Number{4}},
	}

	got := evalVisit(expr)
	if got != 42 {
		return fmt.Errorf("expected 42, got %g", got)
	}
	p.Resultf("visitor: %s = %g", printVisit(expr), got)

	evalF := Fold[float64]{
		Number: func(v float64) float64 { return v },
		Add:    func(a, b float64) float64 { return a + b },
		Mul:    func(a, b float64) float64 { return a * b },
		Sub:    func(a, b float64) float64 { return a - b },
	}
	formatF := Fold[string]{
		Number: func(v float64) string { return fmt.Sprintf("%g", v) },
		Add:    func(a, b string) string { return "(" + a + " + " + b + ")" },
		Mul:    func(a, b string) string { return "(" + a + " * " + b + ")" },
		Sub:    func(a, b string) string { return "(" + a + " - " + b + ")" },
	}
	p.Resultf("fold: %s = %g", formatF.Apply(expr), evalF.Apply(expr))

	depthF := Fold[int]{
		Number: func(float64) int { return 1 },
		Add:    func(a, b int) int { return 1 + max(a, b) },
		Mul:    func(a, b int) int { return 1 + max(a, b) },
		Sub:    func(a, b int) int { return 1 + max(a, b) },
	}
	p.Stepf("the same walk computes anything: depth = %d", depthF.Apply(expr))

	p.Blank()
	p.Notef("Accept routes each node to its visitor method, so extending the")
	p.Notef("node set breaks every visitor loudly at build time. The price is")
	p.Notef("a state-carrying struct per operation; Fold keeps the per-kind")
	p.Notef("dispatch but takes plain funcs and returns values directly.")
	return nil
}
