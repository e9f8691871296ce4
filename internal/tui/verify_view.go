package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avolabs/avoterm/internal/busy"
	"github.com/avolabs/avoterm/internal/payment"
)

// StatusChecker is satisfied by *payment.Checker.
type StatusChecker interface {
	Check(ctx context.Context, identifier string) payment.Result
}

type verifyResultMsg struct {
	result payment.Result
}

// VerifyModel is the DEX payment verification panel.
type VerifyModel struct {
	checker StatusChecker
	latch   *busy.Latch
	input   textinput.Model
	spinner spinner.Model
	result  *payment.Result
	styles  Styles
	width   int
}

func NewVerifyModel(checker StatusChecker, styles Styles) VerifyModel {
	ti := textinput.New()
	ti.Placeholder = "Enter Solana token address"
	ti.Prompt = "» "
	ti.CharLimit = 128
	ti.Width = 50
	ti.PromptStyle = styles.System
	ti.TextStyle = styles.System
	ti.PlaceholderStyle = styles.Subtle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.System

	return VerifyModel{
		checker: checker,
		latch:   &busy.Latch{},
		input:   ti,
		spinner: sp,
		styles:  styles,
		width:   80,
	}
}

func (m VerifyModel) Focus() (VerifyModel, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

func (m VerifyModel) Blur() VerifyModel {
	m.input.Blur()
	return m
}

func (m VerifyModel) InputEmpty() bool {
	return m.input.Value() == ""
}

func (m VerifyModel) Loading() bool {
	return m.latch.Busy()
}

func (m VerifyModel) SetWidth(width int) VerifyModel {
	m.width = width
	w := width - 12
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.input.Width = w
	return m
}

func (m VerifyModel) Update(msg tea.Msg) (VerifyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyResultMsg:
		res := msg.result
		m.result = &res
		m.latch.Release()
		return m, nil

	case spinner.TickMsg:
		if !m.latch.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			if !m.latch.TryAcquire() {
				return m, nil
			}
			m.result = nil
			return m, tea.Batch(m.spinner.Tick, m.check(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m VerifyModel) check(identifier string) tea.Cmd {
	checker := m.checker
	return func() tea.Msg {
		return verifyResultMsg{result: checker.Check(context.Background(), identifier)}
	}
}

func (m VerifyModel) View() string {
	heading := m.styles.Heading.Render("Token Verification")
	intro := m.styles.System.Render("Enter a Solana token address to verify its payment status on DEX")

	var button string
	if m.latch.Busy() {
		button = m.styles.Disabled.Render(m.spinner.View() + " Processing...")
	} else {
		button = m.styles.Button.Render("[Enter] Verify Payment Status")
	}

	parts := []string{
		heading,
		intro,
		"",
		m.styles.Input.Render(m.input.View()),
		button,
	}

	if m.result != nil {
		parts = append(parts, "", m.renderResult(*m.result))
	}

	return m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m VerifyModel) renderResult(r payment.Result) string {
	switch r.Status {
	case payment.StatusPaid:
		return m.styles.Success.Render("✔ Status: " + r.Status.String())
	case payment.StatusNotPaid:
		return m.styles.Failure.Render("✖ Status: " + r.Status.String())
	default:
		return m.styles.Failure.Align(lipgloss.Left).Render("! " + r.Message)
	}
}
