package main

import (
	"io"

	"goidioms/internal/catalog"
	"goidioms/internal/demo"
	"goidioms/internal/exprtree"
	"goidioms/internal/filebuf"
	"goidioms/internal/logstyle"
	"goidioms/internal/lookup"
	"goidioms/internal/stringify"
	"goidioms/internal/ux"
)

// registry assembles every demo, in the same order the feature review
// covers them.
func registry() *demo.Registry {
	reg := demo.NewRegistry()
	reg.MustRegister(lookup.Demo())
	reg.MustRegister(catalog.Demo())
	reg.MustRegister(exprtree.Demo())
	reg.MustRegister(filebuf.Demo())
	reg.MustRegister(stringify.Demo())
	reg.MustRegister(logstyle.Demo())
	return reg
}

// newPrinter builds a printer honoring the configured theme and plain mode.
func newPrinter(w io.Writer) *ux.Printer {
	if cfg.UI.Plain {
		return ux.NewPlainPrinter(w)
	}
	return ux.NewPrinter(w, styles())
}
