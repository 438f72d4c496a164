package picker

import (
	"context"
	"strings"
	"testing"
	"time"

	"goidioms/internal/demo"
	"goidioms/internal/goversion"
	"goidioms/internal/ux"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *demo.Registry {
	t.Helper()
	reg := demo.NewRegistry()
	reg.MustRegister(demo.Demo{
		Name:    "greetings",
		Title:   "Saying hello",
		Summary: "one greeting per era",
		Variants: []demo.Variant{
			{
				ID:    "classic",
				Title: "plain printf",
				Since: goversion.V(1, 0),
				Run: func(ctx context.Context, p *ux.Printer) error {
					p.Resultf("hello from the classic era")
					return nil
				},
			},
			{
				ID:    "modern",
				Title: "structured greeting",
				Since: goversion.V(1, 21),
				Run: func(ctx context.Context, p *ux.Printer) error {
					p.Resultf("hello from the modern era")
					return nil
				},
			},
		},
	})
	return reg
}

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Registry: testRegistry(t),
		Styles:   ux.NewStyles(ux.DarkTheme()),
		Plain:    true,
		Timeout:  5 * time.Second,
	})
}

func resized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestViewListsDemos(t *testing.T) {
	m := resized(t, testModel(t))

	view := m.View()
	assert.Contains(t, view, "Saying hello")
	assert.Contains(t, view, "enter: run")
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, "starting...", m.View())
}

func TestEnterStartsARun(t *testing.T) {
	m := resized(t, testModel(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.NotNil(t, cmd, "enter should schedule work")
	assert.True(t, m.running)
	assert.Contains(t, m.View(), "running greetings")
}

func TestRunResultFillsThePane(t *testing.T) {
	m := resized(t, testModel(t))

	// Drive the run command directly rather than through the batch.
	msg := m.runSelected("greetings")()
	ran, ok := msg.(demoRanMsg)
	require.True(t, ok)
	require.NoError(t, ran.err)
	assert.Contains(t, ran.output, "hello from the classic era")
	assert.Contains(t, ran.output, "hello from the modern era")

	updated, _ := m.Update(ran)
	m = updated.(Model)
	assert.False(t, m.running)
	assert.Equal(t, showingRun, m.content)
	assert.Contains(t, m.View(), "hello from the classic era")
}

func TestRunFailureLandsInThePane(t *testing.T) {
	reg := demo.NewRegistry()
	reg.MustRegister(demo.Demo{
		Name:    "doomed",
		Title:   "Always failing",
		Summary: "a variant that cannot succeed",
		Variants: []demo.Variant{
			{
				ID:    "classic",
				Title: "fails",
				Since: goversion.V(1, 0),
				Run: func(ctx context.Context, p *ux.Printer) error {
					return context.DeadlineExceeded
				},
			},
		},
	})
	m := resized(t, New(Options{
		Registry: reg,
		Styles:   ux.NewStyles(ux.DarkTheme()),
		Plain:    true,
		Timeout:  5 * time.Second,
	}))

	msg := m.runSelected("doomed")()
	ran, ok := msg.(demoRanMsg)
	require.True(t, ok)
	require.Error(t, ran.err)

	updated, _ := m.Update(ran)
	m = updated.(Model)
	assert.Contains(t, m.View(), "run failed")
}

func TestReviewChapterKey(t *testing.T) {
	m := resized(t, testModel(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)

	assert.Equal(t, showingReview, m.content)
	// The test demo has no chapter in the shipped document.
	assert.Contains(t, m.View(), "no review chapter for greetings")
}

func TestResizeRewrapsTheChapter(t *testing.T) {
	m := resized(t, testModel(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	m = updated.(Model)

	view := m.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "no review chapter for greetings")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := resized(t, testModel(t))
			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestTabTogglesFocus(t *testing.T) {
	m := resized(t, testModel(t))
	require.False(t, m.focusViewport)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.True(t, m.focusViewport)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.False(t, m.focusViewport)
}

func TestSpinnerTicksOnlyWhileRunning(t *testing.T) {
	m := resized(t, testModel(t))

	_, cmd := m.Update(m.spinner.Tick())
	assert.Nil(t, cmd, "idle model should not keep the spinner alive")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.True(t, m.running)

	_, cmd = m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd, "running model keeps ticking")
}

func TestDemoItemText(t *testing.T) {
	reg := testRegistry(t)
	d, ok := reg.Get("greetings")
	require.True(t, ok)

	item := demoItem{d: d}
	assert.Equal(t, "Saying hello", item.Title())
	assert.Equal(t, "one greeting per era (2 eras)", item.Description())
	assert.True(t, strings.Contains(item.FilterValue(), "greetings"))
}
