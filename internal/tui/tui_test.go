package tui

import (
	"context"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/payment"
	"github.com/avolabs/avoterm/internal/terminal"
)

type fakeChecker struct {
	calls  atomic.Int32
	result payment.Result
}

func (f *fakeChecker) Check(_ context.Context, identifier string) payment.Result {
	f.calls.Add(1)
	r := f.result
	r.Identifier = identifier
	return r
}

func loadBrand(t *testing.T) *brand.Brand {
	t.Helper()
	b, err := brand.Load("avo")
	require.NoError(t, err)
	return b
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestVerifyModelGatesWhileChecking(t *testing.T) {
	b := loadBrand(t)
	checker := &fakeChecker{result: payment.Result{Status: payment.StatusPaid}}
	m := NewVerifyModel(checker, NewStyles(b.Palette))
	m, _ = m.Focus()
	m.input.SetValue("So11111111111111111111111111111111111111112")

	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())

	m, second := m.Update(enter())
	assert.Nil(t, second, "a second check must not start while busy")
	assert.Contains(t, m.View(), "Processing...")

	for _, msg := range collect(cmd) {
		if res, ok := msg.(verifyResultMsg); ok {
			m, _ = m.Update(res)
		}
	}

	assert.False(t, m.Loading())
	assert.EqualValues(t, 1, checker.calls.Load())
	assert.Contains(t, m.View(), "Status: Paid")
}

func TestVerifyModelNewResultOverwritesOld(t *testing.T) {
	b := loadBrand(t)
	checker := &fakeChecker{result: payment.Result{Status: payment.StatusNotPaid}}
	m := NewVerifyModel(checker, NewStyles(b.Palette))

	m, _ = m.Update(verifyResultMsg{result: payment.Result{Status: payment.StatusPaid}})
	assert.Contains(t, m.View(), "Status: Paid")

	m, _ = m.Update(verifyResultMsg{result: payment.Result{Message: "Error: not found"}})
	view := m.View()
	assert.Contains(t, view, "Error: not found")
	assert.NotContains(t, view, "Status: Paid")
}

func TestTerminalModelPlaysReply(t *testing.T) {
	b := loadBrand(t)
	session := terminal.NewSession(b, terminal.Delays{})
	m := NewTerminalModel(session, NewStyles(b.Palette))
	m, _ = m.Focus()
	m.input.SetValue("hello")

	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	assert.True(t, session.Busy())
	assert.True(t, m.InputEmpty())

	m.input.SetValue("scan")
	var blocked tea.Cmd
	m, blocked = m.Update(enter())
	assert.Nil(t, blocked)

	for cmd != nil {
		m, cmd = m.Update(cmd())
	}

	assert.False(t, session.Busy())
	lines := session.Transcript().Lines()
	last := lines[len(lines)-1]
	assert.Equal(t, terminal.OriginSystem, last.Origin)
	assert.Contains(t, last.Content, "Greetings, I am Avo")
	assert.Equal(t, terminal.Line{Origin: terminal.OriginUser, Content: "hello"}, lines[len(lines)-2])
}

func TestTerminalModelClear(t *testing.T) {
	b := loadBrand(t)
	session := terminal.NewSession(b, terminal.Delays{})
	m := NewTerminalModel(session, NewStyles(b.Palette))
	m.input.SetValue("clear")

	m, cmd := m.Update(enter())
	for cmd != nil {
		m, cmd = m.Update(cmd())
	}
	assert.Zero(t, session.Transcript().Len())
	assert.False(t, session.Busy())
}

func newRoot(t *testing.T, checker StatusChecker) RootModel {
	t.Helper()
	return NewRootModel(Options{
		Brand:   loadBrand(t),
		Checker: checker,
		Delays:  terminal.Delays{},
		Rand:    rand.New(rand.NewSource(7)),
	})
}

func update(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootTabCycling(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	assert.Equal(t, TabOverview, m.ActiveTab())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabUpcoming, m.ActiveTab())
	assert.Contains(t, m.View(), "BUNDLE CHECK")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabDex, m.ActiveTab())
	assert.Contains(t, m.View(), "Token Verification")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabOverview, m.ActiveTab())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabDex, m.ActiveTab())
}

func TestRootOverviewShowsBootTranscript(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	view := m.View()
	assert.Contains(t, view, "INITIALIZING Avo AI SYSTEM...")
	assert.Contains(t, view, "Connected to Solana")
	assert.Contains(t, view, "AvoTUM ENCRYPTION ACTIVE")
}

func TestRootHelpToggle(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	question := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}

	m, _ = update(t, m, question)
	assert.True(t, m.showHelp)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)

	m.terminal.input.SetValue("why")
	m, _ = update(t, m, question)
	assert.False(t, m.showHelp, "? is typed when the input has text")
}

func TestRootStepsReachTerminalOnOtherTab(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	m.terminal.input.SetValue("status")

	m, cmd := update(t, m, enter())
	require.NotNil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	for cmd != nil {
		m, cmd = update(t, m, cmd())
	}
	transcript := m.terminal.session.Transcript().Render(nil)
	assert.True(t, strings.HasSuffix(transcript, "$ - Connection strength: Strong"))
}

func TestRootVerifyFlow(t *testing.T) {
	checker := &fakeChecker{result: payment.Result{Status: payment.StatusNotPaid}}
	m := newRoot(t, checker)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m.verify.input.SetValue("token")

	m, cmd := update(t, m, enter())
	for _, msg := range collect(cmd) {
		m, _ = update(t, m, msg)
	}

	assert.EqualValues(t, 1, checker.calls.Load())
	assert.Contains(t, m.View(), "Status: Not Paid")
}

func TestRootStatusTick(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	m, cmd := update(t, m, statusTickMsg{})
	assert.NotNil(t, cmd)
	assert.Contains(t, loadBrand(t).StatusMessages, m.status)
}

func TestRootEscQuits(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	back := cmd()
	assert.IsType(t, BackMsg{}, back)

	_, cmd = update(t, m, back)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStandaloneVerifyPanel(t *testing.T) {
	checker := &fakeChecker{result: payment.Result{Status: payment.StatusNotPaid}}
	var m tea.Model = Wrap(newVerifyPanel(loadBrand(t), checker))

	for _, r := range "TOKEN" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(enter())
	for _, msg := range collect(cmd) {
		if res, ok := msg.(verifyResultMsg); ok {
			m, _ = m.Update(res)
		}
	}
	assert.Contains(t, m.View(), "Status: Not Paid")
	assert.EqualValues(t, 1, checker.calls.Load())

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	back := cmd()
	assert.IsType(t, BackMsg{}, back)

	_, cmd = m.Update(back)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootNarrowWindow(t *testing.T) {
	m := newRoot(t, &fakeChecker{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 2, Height: 2})

	assert.Equal(t, 1, m.terminal.viewport.Width)
	assert.Equal(t, 3, m.terminal.viewport.Height)
	assert.Equal(t, 1, m.terminal.input.Width)
	assert.Equal(t, 1, m.helpView.Width)
	assert.NotPanics(t, func() { _ = m.View() })
}
