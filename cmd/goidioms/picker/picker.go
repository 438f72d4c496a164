// Package picker is the full-screen demo browser: a list of demos on the
// left, their live output or review chapter on the right.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"goidioms/internal/demo"
	"goidioms/internal/logging"
	"goidioms/internal/review"
	"goidioms/internal/ux"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures the picker.
type Options struct {
	Registry *demo.Registry
	Styles   ux.Styles
	Plain    bool

	// Timeout bounds a single variant run.
	Timeout time.Duration

	// ReviewWidth caps the wrap column for review chapters. Zero wraps at
	// the pane width.
	ReviewWidth int
}

// demoItem adapts demo.Demo to list.Item
type demoItem struct {
	d demo.Demo
}

func (i demoItem) Title() string { return i.d.Title }
func (i demoItem) Description() string {
	return fmt.Sprintf("%s (%d eras)", i.d.Summary, len(i.d.Variants))
}
func (i demoItem) FilterValue() string { return i.d.Name + " " + i.d.Title }

// demoRanMsg delivers a finished run back to the model.
type demoRanMsg struct {
	name   string
	output string
	err    error
}

// paneContent records what the right pane shows, so a resize knows whether
// re-rendering is needed.
type paneContent int

const (
	showingWelcome paneContent = iota
	showingRun
	showingReview
)

// Model is the picker's bubbletea model.
type Model struct {
	width  int
	height int

	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model

	opts Options

	// Focus state
	focusViewport bool

	// Right pane state
	running bool
	content paneContent
	shown   string // demo name behind the right pane
}

// New creates the picker model from a populated registry.
func New(opts Options) Model {
	vp := viewport.New(0, 0)
	vp.SetContent(ux.Logo(opts.Styles) + "\n" +
		opts.Styles.RenderDivider(44) + "\n\n" +
		"Pick a demo. Enter runs it, n shows its review chapter.")

	items := make([]list.Item, 0, opts.Registry.Len())
	for _, d := range opts.Registry.Demos() {
		items = append(items, demoItem{d: d})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Demos"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = opts.Styles.Title

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	return Model{
		list:     l,
		viewport: vp,
		spinner:  sp,
		opts:     opts,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		// Re-wrap whatever the pane is showing at the new width.
		if m.content == showingReview && m.shown != "" {
			m.viewport.SetContent(m.renderChapter(m.shown))
		}

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case demoRanMsg:
		m.running = false
		m.content = showingRun
		m.shown = msg.name
		out := msg.output
		if msg.err != nil {
			out += "\n" + m.opts.Styles.Error.Render(fmt.Sprintf("run failed: %v", msg.err))
		}
		m.viewport.SetContent(out)
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			case "tab":
				m.focusViewport = !m.focusViewport
				return m, nil
			case "enter":
				if item, ok := m.list.SelectedItem().(demoItem); ok && !m.running {
					m.running = true
					m.shown = item.d.Name
					return m, tea.Batch(m.spinner.Tick, m.runSelected(item.d.Name))
				}
				return m, nil
			case "n":
				if item, ok := m.list.SelectedItem().(demoItem); ok && !m.running {
					m.content = showingReview
					m.shown = item.d.Name
					m.viewport.SetContent(m.renderChapter(item.d.Name))
					m.viewport.GotoTop()
				}
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Route remaining messages by focus; non-key messages reach both.
	_, isKey := msg.(tea.KeyMsg)
	if !isKey || !m.focusViewport || m.list.FilterState() == list.Filtering {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || (m.focusViewport && m.list.FilterState() != list.Filtering) {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// runSelected runs one demo off the UI goroutine and reports back.
func (m Model) runSelected(name string) tea.Cmd {
	reg := m.opts.Registry
	styles := m.opts.Styles
	plain := m.opts.Plain
	timeout := m.opts.Timeout

	return func() tea.Msg {
		var buf bytes.Buffer
		p := ux.NewPrinter(&buf, styles)
		if plain {
			p = ux.NewPlainPrinter(&buf)
		}

		runner := demo.NewRunner(reg, demo.Options{Printer: p, Timeout: timeout})
		report, err := runner.RunDemo(context.Background(), name, demo.Filter{})
		if report != nil {
			err = errors.Join(err, report.Err())
		}
		logging.Get(logging.CategoryPicker).Debug("demo finished",
			zap.String("demo", name), zap.Error(err))

		return demoRanMsg{name: name, output: buf.String(), err: err}
	}
}

// renderChapter renders one demo's review chapter at the pane width.
func (m Model) renderChapter(name string) string {
	section, err := review.Section(name)
	if err != nil {
		return m.opts.Styles.Muted.Render(fmt.Sprintf("no review chapter for %s", name))
	}

	wrap := m.paneWidth() - 4
	if m.opts.ReviewWidth > 0 && m.opts.ReviewWidth < wrap {
		wrap = m.opts.ReviewWidth
	}
	if wrap < 20 {
		wrap = 20
	}

	style := "auto"
	if m.opts.Plain {
		style = "notty"
	}
	out, err := review.RenderStyled(section, wrap, style)
	if err != nil {
		return m.opts.Styles.Error.Render(fmt.Sprintf("render failed: %v", err))
	}
	return out
}

// paneWidth is the outer width of the right pane.
func (m Model) paneWidth() int {
	listPaneWidth := int(float64(m.width) * 0.35)
	return m.width - listPaneWidth
}

// View renders the picker.
func (m Model) View() string {
	if m.width == 0 {
		return "starting..."
	}

	listPaneWidth := int(float64(m.width) * 0.35)
	viewPaneWidth := m.width - listPaneWidth

	baseStyle := m.opts.Styles.Content.
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	focusedBorder := m.opts.Styles.Theme.Primary
	blurredBorder := m.opts.Styles.Theme.Border

	var listStyle, viewStyle lipgloss.Style
	if m.focusViewport {
		listStyle = baseStyle.BorderForeground(blurredBorder)
		viewStyle = baseStyle.BorderForeground(focusedBorder)
	} else {
		listStyle = baseStyle.BorderForeground(focusedBorder)
		viewStyle = baseStyle.BorderForeground(blurredBorder)
	}

	pane := m.viewport.View()
	if m.running {
		pane = fmt.Sprintf("%s running %s...", m.spinner.View(), m.shown)
	}

	listView := listStyle.Width(listPaneWidth - 4).Render(m.list.View())
	contentView := viewStyle.Width(viewPaneWidth - 4).Render(pane)

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, listView, contentView)

	help := m.opts.Styles.Muted.Render(" • enter: run • n: review chapter • tab: focus • /: filter • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, mainView, help)
}

// SetSize updates the layout for a new terminal size.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Border(2) + Padding(2) per pane
	chromeW := 4
	chromeH := 2
	paneH := h - 3 - chromeH

	listPaneWidth := int(float64(w) * 0.35)
	viewPaneWidth := w - listPaneWidth

	m.list.SetSize(listPaneWidth-chromeW, paneH)
	m.viewport.Width = viewPaneWidth - chromeW
	m.viewport.Height = paneH
}
