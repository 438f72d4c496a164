// Package ux owns terminal presentation: the glyph printer the demos
// narrate through, the lipgloss theme and style set, and a small static
// table for command output.
//
// Everything here degrades to plain text. Demos write through a Printer so
// one run can land in a styled terminal, a picker pane, or a test buffer;
// plain mode drops every glyph and color for piped output.
package ux
