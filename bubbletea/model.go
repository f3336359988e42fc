package bubbletea

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/serieslog"
	"github.com/fwojciec/serieslog/goldmark"
	"github.com/mattn/go-runewidth"
)

//go:embed help.md
var helpText string

const (
	defaultWidth = 80
	filePrefix   = "File: "
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the session logger. It renders the
// controller's state and translates keys into controller actions. All
// controller calls happen synchronously inside Update.
type Model struct {
	// Input is the number-of-series field. Exported for test access.
	Input textinput.Model

	ctrl   *serieslog.Controller
	theme  serieslog.Theme
	styles Styles
	keys   KeyMap
	help   help.Model

	message  string
	severity serieslog.Severity
	err      error
	showHelp bool
	width    int
}

// New creates a TUI Model and runs the controller's startup check, so a
// session left open by a previous run is offered for resume immediately.
func New(ctrl *serieslog.Controller, theme serieslog.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Prompt = ""
	ti.CharLimit = 9
	ti.Width = 12
	ti.Focus()

	m := Model{
		Input:  ti,
		ctrl:   ctrl,
		theme:  theme,
		styles: NewStyles(theme),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  defaultWidth,
	}
	m = m.apply(ctrl.Init())
	return m
}

// State returns the controller state.
func (m Model) State() serieslog.State { return m.ctrl.State() }

// Message returns the current status message and its severity.
func (m Model) Message() (string, serieslog.Severity) { return m.message, m.severity }

// Err returns the error from the last action, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.forState(m.ctrl.State())

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	// The overlay swallows every other key until it is closed.
	case m.showHelp:
		return m, nil

	case key.Matches(msg, keys.Start):
		return m.start(), nil

	case key.Matches(msg, keys.Stop):
		return m.stop(), nil

	case key.Matches(msg, keys.Submit):
		if m.ctrl.State() == serieslog.Running {
			return m.stop(), nil
		}
		return m.start(), nil

	case key.Matches(msg, keys.Continue):
		return m.apply(m.ctrl.ResumeContinue()), nil

	case key.Matches(msg, keys.Restart):
		return m.apply(m.ctrl.ResumeRestart()), nil
	}

	// The prompt owns the keyboard until a decision is made.
	if m.ctrl.State() == serieslog.PendingResumeDecision {
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) start() Model {
	return m.apply(m.ctrl.Start())
}

func (m Model) stop() Model {
	out := m.ctrl.Stop(m.Input.Value())
	if out.Err == nil && out.Message != "" {
		m.Input.Reset()
	}
	return m.apply(out)
}

// apply records an outcome for display. Ignored actions carry no message
// and leave the previous one in place.
func (m Model) apply(out serieslog.Outcome) Model {
	if out.Message == "" {
		return m
	}
	m.message = out.Message
	m.severity = out.Severity
	m.err = out.Err
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(filePrefix + truncateLeft(m.ctrl.Path(), m.width-runewidth.StringWidth(filePrefix))))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(goldmark.Render(helpText, m.width, m.theme))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys.forState(m.ctrl.State())))
		return b.String()
	}

	if m.ctrl.State() == serieslog.PendingResumeDecision {
		b.WriteString(m.resumePrompt())
		b.WriteString("\n\n")
	}

	b.WriteString("Number of series (required to stop): ")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(lipgloss.NewStyle().Width(m.width).Render(m.styles.Severity(m.severity).Render(m.message)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys.forState(m.ctrl.State())))
	return b.String()
}

func (m Model) header() string {
	title := m.styles.Title.Render("Series Logger")
	dot := m.styles.Muted.Render("●")
	if m.ctrl.State() == serieslog.Running {
		dot = m.styles.Success.Render("● running")
	}
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(dot), 1)
	return title + strings.Repeat(" ", gap) + dot
}

func (m Model) resumePrompt() string {
	text := "Open session since " + m.ctrl.OpenSince() + ". Continue or restart?"
	actions := m.styles.Warning.Render("[c] continue  [r] restart")
	return m.styles.Prompt.Render(m.styles.Warning.Render(text) + "\n" + actions)
}

// truncateLeft shortens s to at most width cells by dropping leading
// runes, so the file name stays visible.
func truncateLeft(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	const ellipsis = "…"
	avail := width - runewidth.StringWidth(ellipsis)
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > avail {
			break
		}
		w += rw
		i--
	}
	return ellipsis + string(runes[i:])
}
