package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/terminal"
)

// Tabs
const (
	TabOverview = iota
	TabUpcoming
	TabDex
)

var tabTitles = []string{"Overview", "Upcoming", "DEX Payments"}

// Messages
type BackMsg struct{}

type statusTickMsg struct{}

type Options struct {
	Brand          *brand.Brand
	Checker        StatusChecker
	Delays         terminal.Delays
	StatusInterval time.Duration
	Rand           *rand.Rand
	Logger         *zap.Logger
}

type RootModel struct {
	brand    *brand.Brand
	styles   Styles
	tab      int
	width    int
	height   int
	status   string
	ticker   *brand.StatusTicker
	interval time.Duration
	logger   *zap.Logger

	// Sub-models
	terminal TerminalModel
	verify   VerifyModel

	showHelp bool
	helpView viewport.Model
}

func NewRootModel(opts Options) RootModel {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.StatusInterval <= 0 {
		opts.StatusInterval = 3 * time.Second
	}

	styles := NewStyles(opts.Brand.Palette)
	session := terminal.NewSession(opts.Brand, opts.Delays)
	ticker := brand.NewStatusTicker(opts.Brand, opts.Rand)

	hv := viewport.New(80, 20)
	hv.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(opts.Brand.Palette.Muted)).
		Padding(1, 2)
	help := renderHelpMarkdown(opts.Brand.Name, session.Dispatcher().Keywords())
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err == nil {
		if out, err := renderer.Render(help); err == nil {
			help = out
		}
	}
	hv.SetContent(help)

	m := RootModel{
		brand:    opts.Brand,
		styles:   styles,
		tab:      TabOverview,
		status:   ticker.First(),
		ticker:   ticker,
		interval: opts.StatusInterval,
		logger:   opts.Logger,
		terminal: NewTerminalModel(session, styles),
		verify:   NewVerifyModel(opts.Checker, styles),
		helpView: hv,
	}
	m.terminal, _ = m.terminal.Focus()
	return m
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickStatus(),
		textinput.Blink,
	)
}

func (m RootModel) tickStatus() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return statusTickMsg{} })
}

// ActiveTab is exposed for tests and the standalone runners.
func (m RootModel) ActiveTab() int {
	return m.tab
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.terminal = m.terminal.SetSize(msg.Width-6, msg.Height-17)
		m.verify = m.verify.SetWidth(msg.Width)
		m.helpView.Width = max(msg.Width-6, 1)
		m.helpView.Height = max(msg.Height-6, 1)
		return m, nil

	case statusTickMsg:
		m.status = m.ticker.Next()
		return m, m.tickStatus()

	case BackMsg:
		return m, tea.Quit

	case terminalStepMsg:
		m.terminal, cmd = m.terminal.Update(msg)
		return m, cmd

	case verifyResultMsg:
		m.logger.Info("Payment check finished",
			zap.String("identifier", msg.result.Identifier),
			zap.Stringer("status", msg.result.Status),
			zap.String("message", msg.result.Message))
		m.verify, cmd = m.verify.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		m.verify, cmd = m.verify.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp {
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		if m.tab == TabOverview {
			m.terminal, cmd = m.terminal.Update(msg)
		}
		return m, cmd
	}

	// Cursor blinks and anything else go to both inputs; each ignores
	// messages that are not addressed to it.
	var tCmd, vCmd tea.Cmd
	m.terminal, tCmd = m.terminal.Update(msg)
	m.verify, vCmd = m.verify.Update(msg)
	return m, tea.Batch(tCmd, vCmd)
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "enter":
			m.showHelp = false
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m, func() tea.Msg { return BackMsg{} }
	case "tab":
		return m.switchTab((m.tab + 1) % len(tabTitles))
	case "shift+tab":
		return m.switchTab((m.tab + len(tabTitles) - 1) % len(tabTitles))
	case "?":
		if m.activeInputEmpty() {
			m.showHelp = true
			m.helpView.GotoTop()
			return m, nil
		}
	}

	switch m.tab {
	case TabOverview:
		m.terminal, cmd = m.terminal.Update(msg)
	case TabDex:
		if msg.Type == tea.KeyEnter && !m.verify.Loading() {
			m.logger.Debug("Payment check requested", zap.String("identifier", m.verify.input.Value()))
		}
		m.verify, cmd = m.verify.Update(msg)
	}
	return m, cmd
}

func (m RootModel) activeInputEmpty() bool {
	switch m.tab {
	case TabOverview:
		return m.terminal.InputEmpty()
	case TabDex:
		return m.verify.InputEmpty()
	}
	return true
}

func (m RootModel) switchTab(tab int) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.terminal = m.terminal.Blur()
	m.verify = m.verify.Blur()

	var cmd tea.Cmd
	switch tab {
	case TabOverview:
		m.terminal, cmd = m.terminal.Focus()
	case TabDex:
		m.verify, cmd = m.verify.Focus()
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				m.helpView.View(),
				m.styles.Subtle.MarginTop(1).Render("Press [Esc] or [?] to go back"),
			),
		)
	}

	var body string
	switch m.tab {
	case TabOverview:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Heading.Render("⚙ System Status"),
				renderPanels(m.brand, m.styles),
			)),
			m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Heading.Render("▣ Neural Interface"),
				m.terminal.View(),
			)),
		)
	case TabUpcoming:
		body = renderUpcoming(m.brand, m.styles)
	case TabDex:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Heading.Render("$ DEX Payment Verification"),
			m.verify.View(),
		)
	}

	footer := m.styles.Subtle.Render("[Tab] switch • [?] help • [Esc] quit")

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), "", body, footer)
}

func (m RootModel) header() string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Logo.Render("◆ "+m.brand.Name),
		m.styles.Tagline.Render(m.brand.Tagline),
	)

	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if i == m.tab {
			tabs[i] = m.styles.ActiveTab.Render(t)
		} else {
			tabs[i] = m.styles.Tab.Render(t)
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	right := lipgloss.JoinVertical(lipgloss.Right, nav, m.styles.Subtle.Render(m.brand.SocialURL))
	status := m.styles.Status.Render(m.status)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, title, status, right)
	}
	left := gap / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		strings.Repeat(" ", left),
		status,
		strings.Repeat(" ", gap-left),
		right,
	)
}

// RunRoot starts the full-screen dashboard.
func RunRoot(opts Options) error {
	p := tea.NewProgram(NewRootModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}
