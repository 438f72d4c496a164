// Package review carries the companion feature review and renders it for
// terminals. The document is embedded so the binary works outside a
// checkout; the file stays in the tree for ordinary reading and editing.
package review

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed feature_review.md
var source string

// ErrNoSection reports an unknown chapter name.
var ErrNoSection = errors.New("no such section")

// Source returns the raw markdown.
func Source() string {
	return source
}

// SectionNames lists the chapter keys in document order.
func SectionNames() []string {
	var names []string
	for _, line := range strings.Split(source, "\n") {
		if name, ok := headingName(line); ok {
			names = append(names, name)
		}
	}
	return names
}

// Section returns the chapter for one demo name, heading included.
func Section(name string) (string, error) {
	return SectionFrom(source, name)
}

// SectionFrom extracts a chapter from arbitrary markdown, so watch mode can
// work on a freshly read file instead of the embedded copy.
func SectionFrom(src, name string) (string, error) {
	lines := strings.Split(src, "\n")
	start := -1
	for i, line := range lines {
		if n, ok := headingName(line); ok && n == name {
			start = i
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoSection, name)
	}
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}
	return strings.TrimRight(strings.Join(lines[start:end], "\n"), "\n") + "\n", nil
}

// Render runs markdown through glamour with the terminal's own style.
func Render(src string, width int) (string, error) {
	return RenderStyled(src, width, "auto")
}

// RenderStyled is Render with an explicit glamour style name. "auto" picks
// from the terminal background; "light", "dark" and "notty" force one.
func RenderStyled(src string, width int, style string) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("build renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// headingName extracts the chapter key from a "## name: subtitle" line.
func headingName(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "## ")
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, ":")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, " ") {
		return "", false
	}
	return name, true
}
