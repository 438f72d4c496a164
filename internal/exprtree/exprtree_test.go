package exprtree

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goidioms/internal/ux"
)

func TestEvalAgreesAcrossEras(t *testing.T) {
	// (2 + 3) * 4 in every representation that predates Sub.
	tagged := &taggedExpr{
		kind: kindMul,
		left: &taggedExpr{
			kind:  kindAdd,
			left:  &taggedExpr{kind: kindNumber, number: 2},
			right: &taggedExpr{kind: kindNumber, number: 3},
		},
		right: &taggedExpr{kind: kindNumber, number: 4},
	}
	typed := Mul{Left: Add{Left: Number{2}, Right: Number{3}}, Right: Number{4}}

	fromTagged, err := evalTagged(tagged)
	require.NoError(t, err)
	assert.Equal(t, 20.0, fromTagged)

	fromIface, err := evalIface(typed)
	require.NoError(t, err)
	assert.Equal(t, 20.0, fromIface)

	assert.Equal(t, 20.0, evalSealed(typed))
	assert.Equal(t, 20.0, evalVisit(typed))

	t.Run("subtraction joins the later renditions", func(t *testing.T) {
		expr := Mul{
			Left:  Sub{Left: Number{10}, Right: Number{3}},
			Right: Add{Left: Number{2}, Right: Number{4}},
		}
		assert.Equal(t, 42.0, evalSealed(expr))
		assert.Equal(t, 42.0, evalVisit(expr))

		evalF := Fold[float64]{
			Number: func(v float64) float64 { return v },
			Add:    func(a, b float64) float64 { return a + b },
			Mul:    func(a, b float64) float64 { return a * b },
			Sub:    func(a, b float64) float64 { return a - b },
		}
		assert.Equal(t, 42.0, evalF.Apply(expr))
	})
}

func TestTaggedHazards(t *testing.T) {
	t.Run("number with children evaluates silently", func(t *testing.T) {
		odd := &taggedExpr{kind: kindNumber, number: 7, left: &taggedExpr{kind: kindNumber, number: 1}}
		got, err := evalTagged(odd)
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	t.Run("binary node without operands", func(t *testing.T) {
		_, err := evalTagged(&taggedExpr{kind: kindAdd})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corrupt add node")

		_, err = evalTagged(&taggedExpr{kind: kindMul, left: &taggedExpr{kind: kindNumber, number: 2}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corrupt mul node")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := evalTagged(&taggedExpr{kind: exprKind(42)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind 42")
	})

	t.Run("errors propagate from nested operands", func(t *testing.T) {
		bad := &taggedExpr{
			kind:  kindAdd,
			left:  &taggedExpr{kind: kindNumber, number: 1},
			right: &taggedExpr{kind: kindMul},
		}
		_, err := evalTagged(bad)
		assert.Error(t, err)
	})
}

func TestOpenUnionHazards(t *testing.T) {
	_, err := evalIface("seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown expression node string")

	_, err = evalIface(Sub{Left: Number{9}, Right: Number{1}})
	require.Error(t, err, "the switch predates Sub")

	_, err = formatIface(42)
	assert.Error(t, err)

	_, err = evalIface(Add{Left: Number{1}, Right: Sub{Left: Number{2}, Right: Number{1}}})
	assert.Error(t, err, "the default also catches nested strangers")
}

func TestClassify(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{Number{0}, "zero"},
		{Number{-2.5}, "negative"},
		{Number{3}, "positive"},
		{Add{Left: Number{1}, Right: Number{2}}, "sum"},
		{Mul{Left: Number{1}, Right: Number{2}}, "product"},
		{Sub{Left: Number{1}, Right: Number{2}}, "difference"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.expr), "classify(%s)", formatSealed(tc.expr))
	}
}

func TestIsConstant(t *testing.T) {
	assert.True(t, isConstant(Number{5}))
	assert.True(t, isConstant(Add{Left: Number{5}, Right: Number{3}}))
	assert.False(t, isConstant(Mul{Left: Number{5}, Right: Number{3}}), "only additions count")
	assert.False(t, isConstant(Sub{Left: Number{5}, Right: Number{3}}))
	assert.False(t, isConstant(Add{Left: Number{5}, Right: Add{Left: Number{1}, Right: Number{2}}}),
		"the literal check goes one level deep only")
}

func TestFormatsAgree(t *testing.T) {
	expr := Mul{
		Left:  Sub{Left: Number{10}, Right: Number{3}},
		Right: Add{Left: Number{2}, Right: Number{4}},
	}
	want := "((10 - 3) * (2 + 4))"

	assert.Equal(t, want, formatSealed(expr))
	assert.Equal(t, want, printVisit(expr))

	formatF := Fold[string]{
		Number: func(v float64) string { return formatSealed(Number{v}) },
		Add:    func(a, b string) string { return "(" + a + " + " + b + ")" },
		Mul:    func(a, b string) string { return "(" + a + " * " + b + ")" },
		Sub:    func(a, b string) string { return "(" + a + " - " + b + ")" },
	}
	assert.Equal(t, want, formatF.Apply(expr))

	text, err := formatIface(Mul{Left: Add{Left: Number{2}, Right: Number{3}}, Right: Number{4}})
	require.NoError(t, err)
	assert.Equal(t, "((2 + 3) * 4)", text)
}

func TestFoldComputesAnything(t *testing.T) {
	expr := Mul{
		Left:  Sub{Left: Number{10}, Right: Number{3}},
		Right: Add{Left: Number{2}, Right: Number{4}},
	}

	depth := Fold[int]{
		Number: func(float64) int { return 1 },
		Add:    func(a, b int) int { return 1 + max(a, b) },
		Mul:    func(a, b int) int { return 1 + max(a, b) },
		Sub:    func(a, b int) int { return 1 + max(a, b) },
	}
	assert.Equal(t, 3, depth.Apply(expr))

	literals := Fold[int]{
		Number: func(float64) int { return 1 },
		Add:    func(a, b int) int { return a + b },
		Mul:    func(a, b int) int { return a + b },
		Sub:    func(a, b int) int { return a + b },
	}
	assert.Equal(t, 4, literals.Apply(expr))
}

// strayNode lives only in the tests: a node type none of the sealed
// switches know about, to prove they fail loudly rather than quietly.
type strayNode struct{}

func (strayNode) isExpr()        {}
func (strayNode) Accept(Visitor) {}

func TestSealedSwitchesFailLoudly(t *testing.T) {
	assert.Panics(t, func() { evalSealed(strayNode{}) })
	assert.Panics(t, func() { formatSealed(strayNode{}) })
	assert.Panics(t, func() { classify(strayNode{}) })
	assert.Panics(t, func() {
		Fold[int]{Number: func(float64) int { return 0 }}.Apply(strayNode{})
	})
	assert.False(t, isConstant(strayNode{}), "isConstant treats strangers as non-constant")
}

func TestVariantsRun(t *testing.T) {
	anchors := map[string][]string{
		"tagged": {
			"(2 + 3) * 4 = 20",
			"ignored silently",
			"corrupt add node: missing operand",
			"unknown kind 42",
		},
		"iface": {
			"((2 + 3) * 4) = 20",
			"5 + 6 = 11",
			"unknown expression node string",
			"a node type added later falls through",
		},
		"sealed": {
			"((10 - 3) * (2 + 4)) = 42",
			"-3.5 -> negative",
			"(2 + 4) -> sum",
			"isConstant((5 + 3)) = true",
			"isConstant((5 * 3)) = false",
		},
		"visitor": {
			"visitor: ((10 - 3) * (2 + 4)) = 42",
			"fold: ((10 - 3) * (2 + 4)) = 42",
			"depth = 3",
		},
	}

	for _, v := range Demo().Variants {
		t.Run(v.ID, func(t *testing.T) {
			var buf bytes.Buffer
			err := v.Run(context.Background(), ux.NewPlainPrinter(&buf))
			require.NoError(t, err)
			for _, anchor := range anchors[v.ID] {
				assert.Contains(t, buf.String(), anchor)
			}
		})
	}
}

func TestDemoShape(t *testing.T) {
	d := Demo()
	assert.Equal(t, "variants", d.Name)
	assert.Equal(t, []string{"tagged", "iface", "sealed", "visitor"}, d.VariantIDs())
}
