package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/avolabs/avoterm/internal/brand"
)

// Styles is the lipgloss rendition of a brand palette. Every view draws from
// it so a second brand never needs a second copy of the UI.
type Styles struct {
	Logo      lipgloss.Style
	Tagline   lipgloss.Style
	Status    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Section   lipgloss.Style
	Heading   lipgloss.Style
	Panel     lipgloss.Style
	Card      lipgloss.Style
	Badge     lipgloss.Style
	System    lipgloss.Style
	User      lipgloss.Style
	Warning   lipgloss.Style
	Input     lipgloss.Style
	Button    lipgloss.Style
	Disabled  lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Subtle    lipgloss.Style
}

func NewStyles(p brand.Palette) Styles {
	primary := lipgloss.Color(p.Primary)
	accent := lipgloss.Color(p.Accent)
	warning := lipgloss.Color(p.Warning)
	failure := lipgloss.Color(p.Error)
	muted := lipgloss.Color(p.Muted)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return Styles{
		Logo:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Tagline: lipgloss.NewStyle().Foreground(primary).Faint(true),
		Status:  lipgloss.NewStyle().Foreground(primary).Italic(true),

		Tab: lipgloss.NewStyle().
			Foreground(primary).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(muted).
			Bold(true).
			Padding(0, 1),

		Section: box.Copy().Padding(0, 2),
		Heading: lipgloss.NewStyle().Foreground(primary).Bold(true).MarginBottom(1),
		Panel:   box.Copy().Padding(0, 1).Width(26),
		Card:    box.Copy().Padding(0, 2).Width(44),
		Badge: lipgloss.NewStyle().
			Foreground(primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		System:  lipgloss.NewStyle().Foreground(primary),
		User:    lipgloss.NewStyle().Foreground(accent),
		Warning: lipgloss.NewStyle().Foreground(warning),

		Input: box.Copy().Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(muted).
			Bold(true).
			Padding(0, 2),
		Disabled: lipgloss.NewStyle().
			Foreground(muted).
			Faint(true).
			Padding(0, 2),

		Success: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Foreground(primary).
			Padding(0, 4).
			Align(lipgloss.Center),
		Failure: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(failure).
			Foreground(failure).
			Padding(0, 4).
			Align(lipgloss.Center),

		Subtle: lipgloss.NewStyle().Foreground(muted),
	}
}
