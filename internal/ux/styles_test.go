package ux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTheme(t *testing.T) {
	t.Run("defaults to light", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("GOIDIOMS_DARK_MODE", "")
		assert.False(t, DetectTheme().IsDark)
	})

	t.Run("dark terminal background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "15;0")
		t.Setenv("GOIDIOMS_DARK_MODE", "")
		assert.True(t, DetectTheme().IsDark)
	})

	t.Run("light terminal background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		t.Setenv("GOIDIOMS_DARK_MODE", "")
		assert.False(t, DetectTheme().IsDark)
	})

	t.Run("explicit dark mode", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("GOIDIOMS_DARK_MODE", "1")
		assert.True(t, DetectTheme().IsDark)
	})
}

func TestThemesDiffer(t *testing.T) {
	light, dark := LightTheme(), DarkTheme()
	assert.NotEqual(t, light.Background, dark.Background)
	assert.Equal(t, light.Primary, dark.Accent, "dark mode flips primary and accent")
}
