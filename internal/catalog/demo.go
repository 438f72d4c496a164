package catalog

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the collection-processing demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "sequences",
		Title:   "Catalog processing: filter, transform, aggregate",
		Summary: "Ten products, four generations of collection plumbing.",
		Variants: []demo.Variant{
			{
				ID:    "classic",
				Title: "explicit loops and temporary slices",
				Since: goversion.V(1, 0),
				Run:   runClassic,
			},
			{
				ID:    "helpers",
				Title: "sort.Slice and per-type helper functions",
				Since: goversion.V(1, 8),
				Run:   runHelpers,
			},
			{
				ID:    "generic",
				Title: "type parameters, then the slices and maps packages",
				Since: goversion.V(1, 18),
				Run:   runGeneric,
			},
			{
				ID:    "lazy",
				Title: "iter.Seq pipelines with early termination",
				Since: goversion.V(1, 23),
				Run:   runLazy,
			},
		},
	}
}
