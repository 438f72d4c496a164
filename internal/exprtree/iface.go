package exprtree

import (
	"context"
	"errors"
	"fmt"

	"goidioms/internal/ux"
)

// evalIface dispatches on dynamic type instead of a tag. The parameter is
// plain any: nothing says which types belong to the union, so the default
// case is load-bearing.
func evalIface(e any) (float64, error) {
	switch n := e.(type) {
	case Number:
		return n.Value, nil
	case Add:
		l, r, err := evalOperands(n.Left, n.Right)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case Mul:
		l, r, err := evalOperands(n.Left, n.Right)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	default:
		return 0, fmt.Errorf("unknown expression node %T", e)
	}
}

func evalOperands(left, right any) (float64, float64, error) {
	l, err := evalIface(left)
	if err != nil {
		return 0, 0, err
	}
	r, err := evalIface(right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// formatIface parenthesizes through the same open dispatch.
func formatIface(e any) (string, error) {
	switch n := e.(type) {
	case Number:
		return fmt.Sprintf("%g", n.Value), nil
	case Add:
		return formatBinary(n.Left, "+", n.Right)
	case Mul:
		return formatBinary(n.Left, "*", n.Right)
	default:
		return "", fmt.Errorf("unknown expression node %T", e)
	}
}

func formatBinary(left any, op string, right any) (string, error) {
	l, err := formatIface(left)
	if err != nil {
		return "", err
	}
	r, err := formatIface(right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", l, op, r), nil
}

func runIface(ctx context.Context, p *ux.Printer) error {
	expr := Mul{
		Left:  Add{Left: Number{2}, Right: Number{3}},
		Right: Number{4},
	}

	text, err := formatIface(expr)
	if err != nil {
		return fmt.Errorf("well-formed tree should format: %w", err)
	}
	got, err := evalIface(expr)
	if err != nil {
		return fmt.Errorf("well-formed tree should evaluate: %w", err)
	}
	p.Resultf("%s = %g", text, got)

	sum, err := evalIface(Add{Left: Number{5}, Right: Number{6}})
	if err != nil {
		return fmt.Errorf("5 + 6 should evaluate: %w", err)
	}
	p.Resultf("5 + 6 = %g", sum)

	_, err = evalIface("seven")
	if err == nil {
		return errors.New("a string should not evaluate")
	}
	p.Failf("%v", err)

	_, err = evalIface(Sub{Left: Number{9}, Right: Number{1}})
	if err == nil {
		return errors.New("a switch written before Sub should not handle it")
	}
	p.Failf("a node type added later falls through: %v", err)

	p.Blank()
	p.Notef("Separate node types end the corrupt-shape problem: an Add always")
	p.Notef("has two children. But the union is open. Any value reaches the")
	p.Notef("switch, and a node type added later hits the default at runtime")
	p.Notef("instead of failing the build.")
	return nil
}
