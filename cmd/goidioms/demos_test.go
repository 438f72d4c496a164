package main

import (
	"bytes"
	"testing"

	"goidioms/internal/config"
	"goidioms/internal/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrderMatchesTheReview(t *testing.T) {
	reg := registry()
	require.Equal(t,
		[]string{"errors", "sequences", "variants", "resources", "serialization", "logging"},
		reg.Names())

	sections := review.SectionNames()
	for _, name := range reg.Names() {
		assert.Contains(t, sections, name, "demo %s needs a review chapter", name)
	}
}

func TestRegistryErasUnion(t *testing.T) {
	eras := registry().Eras()

	assert.Contains(t, eras, "classic")
	assert.Contains(t, eras, "generic")
	assert.Contains(t, eras, "lazy")
	assert.Contains(t, eras, "slog")

	seen := make(map[string]bool)
	for _, e := range eras {
		assert.False(t, seen[e], "era %s listed twice", e)
		seen[e] = true
	}
}

func TestNewPrinterHonorsPlainMode(t *testing.T) {
	oldCfg := cfg
	t.Cleanup(func() { cfg = oldCfg })

	cfg = config.DefaultConfig()
	cfg.UI.Plain = true
	assert.True(t, newPrinter(&bytes.Buffer{}).Plain())

	cfg.UI.Plain = false
	cfg.UI.Theme = "dark"
	assert.False(t, newPrinter(&bytes.Buffer{}).Plain())
}
