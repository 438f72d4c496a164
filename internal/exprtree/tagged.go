package exprtree

import (
	"context"
	"errors"
	"fmt"

	"goidioms/internal/ux"
)

type exprKind int

const (
	kindNumber exprKind = iota
	kindAdd
	kindMul
)

func (k exprKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindAdd:
		return "add"
	case kindMul:
		return "mul"
	}
	return fmt.Sprintf("exprKind(%d)", int(k))
}

// taggedExpr carries every payload for every kind. Which fields are live
// depends on the tag alone; nothing stops a number from having children.
type taggedExpr struct {
	kind        exprKind
	number      float64
	left, right *taggedExpr
}

// evalTagged dispatches on the tag. Every consumer re-checks the shape
// invariants the type system cannot state.
func evalTagged(e *taggedExpr) (float64, error) {
	switch e.kind {
	case kindNumber:
		return e.number, nil
	case kindAdd, kindMul:
		if e.left == nil || e.right == nil {
			return 0, fmt.Errorf("corrupt %s node: missing operand", e.kind)
		}
		l, err := evalTagged(e.left)
		if err != nil {
			return 0, err
		}
		r, err := evalTagged(e.right)
		if err != nil {
			return 0, err
		}
		if e.kind == kindAdd {
			return l + r, nil
		}
		return l * r, nil
	default:
		return 0, fmt.Errorf("corrupt expression: unknown kind %d", int(e.kind))
	}
}

func runTagged(ctx context.Context, p *ux.Printer) error {
	// (2 + 3) * 4
	expr := &taggedExpr{
		kind: kindMul,
		left: &taggedExpr{
			kind:  kindAdd,
			left:  &taggedExpr{kind: kindNumber, number: 2},
			right: &taggedExpr{kind: kindNumber, number: 3},
		},
		right: &taggedExpr{kind: kindNumber, number: 4},
	}

	got, err := evalTagged(expr)
	if err != nil {
		return fmt.Errorf("well-formed tree should evaluate: %w", err)
	}
	p.Resultf("(2 + 3) * 4 = %g", got)

	// The representable nonsense.
	odd := &taggedExpr{kind: kindNumber, number: 7, left: expr}
	v, err := evalTagged(odd)
	if err != nil {
		return fmt.Errorf("a number with children should still read its number: %w", err)
	}
	p.Failf("a number carrying children evaluates to %g; the extras are ignored silently", v)

	_, err = evalTagged(&taggedExpr{kind: kindAdd})
	if err == nil {
		return errors.New("an add without operands should fail")
	}
	p.Failf("%v", err)

	_, err = evalTagged(&taggedExpr{kind: exprKind(42)})
	if err == nil {
		return errors.New("an unknown kind should fail")
	}
	p.Failf("%v", err)

	p.Blank()
	p.Notef("One struct plus a tag can express every node, and every piece")
	p.Notef("of representable nonsense too. The guards live in each consumer,")
	p.Notef("and a new kind compiles without any switch noticing.")
	return nil
}
