package exprtree

import (
	"context"
	"fmt"

	"goidioms/internal/ux"
)

// evalSealed needs no error path: the marker method pins the node set to
// this package, so the switch below covers the whole universe. A missed
// case is a package bug, and the default turns it into a loud one.
func evalSealed(e Expr) float64 {
	switch n := e.(type) {
	case Number:
		return n.Value
	case Add:
		return evalSealed(n.Left) + evalSealed(n.Right)
	case Mul:
		return evalSealed(n.Left) * evalSealed(n.Right)
	case Sub:
		return evalSealed(n.Left) - evalSealed(n.Right)
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

// formatSealed parenthesizes every binary node.
func formatSealed(e Expr) string {
	switch n := e.(type) {
	case Number:
		return fmt.Sprintf("%g", n.Value)
	case Add:
		return fmt.Sprintf("(%s + %s)", formatSealed(n.Left), formatSealed(n.Right))
	case Mul:
		return fmt.Sprintf("(%s * %s)", formatSealed(n.Left), formatSealed(n.Right))
	case Sub:
		return fmt.Sprintf("(%s - %s)", formatSealed(n.Left), formatSealed(n.Right))
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

// classify names a node the way a pattern match with guards would.
func classify(e Expr) string {
	switch n := e.(type) {
	case Number:
		switch {
		case n.Value == 0:
			return "zero"
		case n.Value < 0:
			return "negative"
		default:
			return "positive"
		}
	case Add:
		return "sum"
	case Mul:
		return "product"
	case Sub:
		return "difference"
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

// isConstant reports whether e is a literal or an addition of two
// literals, the nested-pattern example.
func isConstant(e Expr) bool {
	switch n := e.(type) {
	case Number:
		return true
	case Add:
		_, leftLit := n.Left.(Number)
		_, rightLit := n.Right.(Number)
		return leftLit && rightLit
	default:
		return false
	}
}

func runSealed(ctx context.Context, p *ux.Printer) error {
	// (10 - 3) * (2 + 4), with the late-arriving Sub in play.
	expr := Mul{
		Left:  Sub{Left: Number{10}, Right: Number{3}},
		Right: Add{Left: Number{2}, Right: Number{4}},
	}

	got := evalSealed(expr)
	if got != 42 {
		return fmt.Errorf("expected 42, got %g", got)
	}
	p.Resultf("%s = %g", formatSealed(expr), got)

	p.Stepf("classify follows the shape, with guards on the value:")
	samples := []Expr{
		Number{0},
		Number{-3.5},
		Number{7},
		Add{Left: Number{2}, Right: Number{4}},
		expr,
		Sub{Left: Number{10}, Right: Number{3}},
	}
	for _, s := range samples {
		p.Bulletf("%s -> %s", formatSealed(s), classify(s))
	}

	p.Stepf("isConstant matches one level deeper:")
	constants := []Expr{
		Number{5},
		Add{Left: Number{5}, Right: Number{3}},
		Mul{Left: Number{5}, Right: Number{3}},
		expr,
	}
	for _, s := range constants {
		p.Bulletf("isConstant(%s) = %t", formatSealed(s), isConstant(s))
	}

	p.Blank()
	p.Notef("The marker closes the union: no other package can add a node,")
	p.Notef("so a switch over Expr is morally exhaustive. Sub still joined")
	p.Notef("without any switch failing to compile; the default panic and the")
	p.Notef("tests carry the exhaustiveness contract the compiler does not.")
	return nil
}
