package ux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePlainView(t *testing.T) {
	tbl := NewTable("Demos", "NAME", "VARIANTS")
	tbl.AddRow("lookup", "4")
	tbl.AddRow("exprtree", "4")

	out := tbl.PlainView()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Demos", lines[0])
	assert.Contains(t, lines[1], "NAME")
	assert.Contains(t, lines[1], "VARIANTS")
	assert.Contains(t, lines[2], "lookup")
	assert.Contains(t, lines[3], "exprtree")

	// Columns line up: both data rows start VARIANTS at the same offset.
	assert.Equal(t, strings.Index(lines[1], "VARIANTS"), strings.Index(lines[2], "4"))
}

func TestTableEmptyRendersNothing(t *testing.T) {
	tbl := NewTable("Empty", "A", "B")
	assert.Empty(t, tbl.PlainView())
	assert.Empty(t, tbl.View(NewStyles(LightTheme())))
}

func TestTableViewContainsCells(t *testing.T) {
	tbl := NewTable("", "ERA", "TITLE")
	tbl.AddRow("go1.13", "wrapped errors")

	out := tbl.View(NewStyles(DarkTheme()))
	assert.Contains(t, out, "ERA")
	assert.Contains(t, out, "go1.13")
	assert.Contains(t, out, "wrapped errors")
}

func TestTableShortRow(t *testing.T) {
	tbl := NewTable("", "A", "B", "C")
	tbl.AddRow("only")

	out := tbl.PlainView()
	assert.Contains(t, out, "only")
}
