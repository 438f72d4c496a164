package logstyle

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the logging demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "logging",
		Title:   "Log lines: from printf prose to structured events",
		Summary: "Three service events logged four ways, ending at the slog ecosystem.",
		Variants: []demo.Variant{
			{
				ID:    "stdlog",
				Title: "package log with prefixes and printf",
				Since: goversion.V(1, 0),
				Run:   runStdlog,
			},
			{
				ID:    "keyvals",
				Title: "hand-rolled key=value lines, the folk convention",
				Since: goversion.V(1, 0),
				Run:   runKeyvals,
			},
			{
				ID:    "slog",
				Title: "log/slog: handlers, groups and level control",
				Since: goversion.V(1, 21),
				Run:   runSlog,
			},
			{
				ID:    "tinted",
				Title: "a drop-in ecosystem handler (lmittmann/tint)",
				Since: goversion.V(1, 21),
				Run:   runTinted,
			},
		},
	}
}
