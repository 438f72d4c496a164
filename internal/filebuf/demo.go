package filebuf

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the resource-lifecycle demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "resources",
		Title:   "File processors: acquiring and releasing in pairs",
		Summary: "One buffered file reader, four disciplines for letting go.",
		Variants: []demo.Variant{
			{
				ID:    "manual",
				Title: "explicit Close on every exit path",
				Since: goversion.V(1, 0),
				Run:   runManual,
			},
			{
				ID:    "deferred",
				Title: "defer pins the release to the acquisition",
				Since: goversion.V(1, 0),
				Run:   runDeferred,
			},
			{
				ID:    "joined",
				Title: "close errors folded into the return with errors.Join",
				Since: goversion.V(1, 20),
				Run:   runJoined,
			},
			{
				ID:    "guarded",
				Title: "a cleanup guard and context-aware acquisition",
				Since: goversion.V(1, 20),
				Run:   runGuarded,
			},
		},
	}
}
