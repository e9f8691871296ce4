package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolabs/avoterm/internal/brand"
)

// StandaloneWrapper lets a panel built for the dashboard run on its own,
// quitting where the dashboard would have taken it back.
type StandaloneWrapper struct {
	model tea.Model
}

func Wrap(m tea.Model) StandaloneWrapper {
	return StandaloneWrapper{model: m}
}

func (m StandaloneWrapper) Init() tea.Cmd {
	return m.model.Init()
}

func (m StandaloneWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case BackMsg:
		return m, tea.Quit
	}

	newModel, cmd := m.model.Update(msg)
	m.model = newModel
	return m, cmd
}

func (m StandaloneWrapper) View() string {
	return m.model.View()
}

// verifyPanel adapts VerifyModel to tea.Model for standalone use.
type verifyPanel struct {
	verify VerifyModel
	header string
}

func newVerifyPanel(b *brand.Brand, checker StatusChecker) verifyPanel {
	styles := NewStyles(b.Palette)
	v := NewVerifyModel(checker, styles)
	v, _ = v.Focus()
	return verifyPanel{
		verify: v,
		header: styles.Logo.Render(b.Name) + "  " + styles.Tagline.Render("DEX Payments"),
	}
}

func (p verifyPanel) Init() tea.Cmd {
	return textinput.Blink
}

func (p verifyPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.verify = p.verify.SetWidth(msg.Width)
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return p, tea.Quit
		case "esc":
			return p, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	p.verify, cmd = p.verify.Update(msg)
	return p, cmd
}

func (p verifyPanel) View() string {
	return p.header + "\n\n" + p.verify.View() + "\n" + "esc quit"
}

// RunVerify opens only the payment verification panel.
func RunVerify(b *brand.Brand, checker StatusChecker) error {
	p := tea.NewProgram(Wrap(newVerifyPanel(b, checker)))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running verification panel: %w", err)
	}
	return nil
}
