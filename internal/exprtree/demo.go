package exprtree

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the closed-union modeling demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "variants",
		Title:   "Expression trees: modeling a closed set of shapes",
		Summary: "One arithmetic evaluator, four ways to spell a union type.",
		Variants: []demo.Variant{
			{
				ID:    "tagged",
				Title: "one struct, a kind tag, and discipline",
				Since: goversion.V(1, 0),
				Run:   runTagged,
			},
			{
				ID:    "iface",
				Title: "node types behind an open interface",
				Since: goversion.V(1, 0),
				Run:   runIface,
			},
			{
				ID:    "sealed",
				Title: "a marker method seals the union",
				Since: goversion.V(1, 0),
				Run:   runSealed,
			},
			{
				ID:    "visitor",
				Title: "double dispatch and a generic Fold",
				Since: goversion.V(1, 18),
				Run:   runVisitor,
			},
		},
	}
}
