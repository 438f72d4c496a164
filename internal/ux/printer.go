package ux

import (
	"fmt"
	"io"
)

// Printer writes demo narration to a terminal. Styled mode decorates lines
// with the active theme; plain mode keeps the same glyphs but no styling, so
// output stays stable for piping and for golden comparisons.
type Printer struct {
	w      io.Writer
	styles Styles
	plain  bool
}

// NewPrinter returns a styled printer.
func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// NewPlainPrinter returns a printer that emits undecorated text.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w, plain: true}
}

// Plain reports whether styling is disabled.
func (p *Printer) Plain() bool {
	return p.plain
}

// Writer exposes the underlying writer so demos can aim other emitters,
// log handlers among them, at the same destination.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Section opens a named block of output.
func (p *Printer) Section(title string) {
	if p.plain {
		fmt.Fprintf(p.w, "\n== %s ==\n", title)
		return
	}
	fmt.Fprintf(p.w, "\n%s\n", p.styles.Title.Render(title))
}

// Stepf prints one ordinary line of narration.
func (p *Printer) Stepf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "%s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "%s\n", p.styles.Body.Render(msg))
}

// Bulletf prints an indented list item.
func (p *Printer) Bulletf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "  - %s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "  %s %s\n", p.styles.Muted.Render("-"), p.styles.Body.Render(msg))
}

// Resultf prints a successful outcome.
func (p *Printer) Resultf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "✓ %s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Success.Render("✓"), p.styles.Body.Render(msg))
}

// Failf prints an outcome that went the error path. Demos use it for
// failures they provoke on purpose, so it is narration, not a diagnostic.
func (p *Printer) Failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "✗ %s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Error.Render("✗"), p.styles.Body.Render(msg))
}

// Notef prints muted commentary.
func (p *Printer) Notef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "  %s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "  %s\n", p.styles.Muted.Render(msg))
}

// Warnf prints a cautionary line.
func (p *Printer) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.plain {
		fmt.Fprintf(p.w, "! %s\n", msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Warning.Render("!"), p.styles.Body.Render(msg))
}

// Printf writes free-form text with no decoration in either mode.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
