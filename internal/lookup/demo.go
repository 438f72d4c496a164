package lookup

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the error-signaling demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "errors",
		Title:   "User lookup: signaling absence and bad input",
		Summary: "One directory query, four generations of error handling.",
		Variants: []demo.Variant{
			{
				ID:    "classic",
				Title: "sentinel errors and comma-ok",
				Since: goversion.V(1, 0),
				Run:   runClassic,
			},
			{
				ID:    "wrapped",
				Title: "error wrapping with %w, errors.Is and errors.As",
				Since: goversion.V(1, 13),
				Run:   runWrapped,
			},
			{
				ID:    "result",
				Title: "a generic Result type as the expected-value alternative",
				Since: goversion.V(1, 18),
				Run:   runResult,
			},
			{
				ID:    "joined",
				Title: "errors.Join for batch and validation failures",
				Since: goversion.V(1, 20),
				Run:   runJoined,
			},
		},
	}
}
