package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avolabs/avoterm/internal/terminal"
)

// terminalStepMsg delivers the next scripted line of a reply.
type terminalStepMsg struct {
	step terminal.Step
}

// TerminalModel is the "neural interface": a transcript plus one input line.
type TerminalModel struct {
	session  *terminal.Session
	input    textinput.Model
	viewport viewport.Model
	pending  []terminal.Step
	styles   Styles
	width    int
}

func NewTerminalModel(session *terminal.Session, styles Styles) TerminalModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command or ask a question..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.PromptStyle = styles.User
	ti.TextStyle = styles.User
	ti.PlaceholderStyle = styles.Subtle

	vp := viewport.New(80, 12)

	m := TerminalModel{
		session:  session,
		input:    ti,
		viewport: vp,
		styles:   styles,
		width:    80,
	}
	m.refresh()
	return m
}

func (m TerminalModel) Focus() (TerminalModel, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

func (m TerminalModel) Blur() TerminalModel {
	m.input.Blur()
	return m
}

// InputEmpty is used by the root to decide whether "?" is typed or opens help.
func (m TerminalModel) InputEmpty() bool {
	return m.input.Value() == ""
}

func (m TerminalModel) SetSize(width, height int) TerminalModel {
	width = max(width, 1)
	height = max(height, 3)
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
	m.input.Width = max(width-4, 1)
	m.refresh()
	return m
}

func (m TerminalModel) Update(msg tea.Msg) (TerminalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case terminalStepMsg:
		m.session.Apply(msg.step)
		return m.advance()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.session.Busy() {
				return m, nil
			}
			steps, err := m.session.Submit(m.input.Value())
			if err != nil {
				return m, nil
			}
			m.input.Reset()
			m.pending = steps
			return m.advance()
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if m.session.Busy() {
			return m, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance schedules the next pending step, or releases the session when the
// reply has been played out.
func (m TerminalModel) advance() (TerminalModel, tea.Cmd) {
	m.refresh()
	if len(m.pending) == 0 {
		m.session.Done()
		return m, nil
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	return m, playStep(next)
}

func playStep(s terminal.Step) tea.Cmd {
	msg := terminalStepMsg{step: s}
	if s.Delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(s.Delay, func(time.Time) tea.Msg { return msg })
}

func (m *TerminalModel) refresh() {
	content := m.session.Transcript().Render(m.styleLine)
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m TerminalModel) styleLine(l terminal.Line) string {
	switch l.Origin {
	case terminal.OriginUser:
		return m.styles.User.Render(l.String())
	case terminal.OriginWarning:
		return m.styles.Warning.Render(l.String())
	default:
		return m.styles.System.Render(l.String())
	}
}

func (m TerminalModel) View() string {
	var footer string
	if m.session.Busy() {
		footer = m.styles.System.Blink(true).Render("Processing...")
	} else {
		footer = m.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		strings.Repeat("─", max(m.width-2, 0)),
		footer,
	)
}
