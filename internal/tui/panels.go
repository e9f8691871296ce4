package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/avolabs/avoterm/internal/brand"
)

// renderPanels draws the system status row of the overview tab.
func renderPanels(b *brand.Brand, s Styles) string {
	cells := make([]string, 0, len(b.Panels))
	for _, p := range b.Panels {
		cells = append(cells, s.Panel.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				s.Logo.Render("◉ "+p.Title),
				s.System.Render(p.Detail),
			),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderUpcoming draws the "SOON" tool cards two per row.
func renderUpcoming(b *brand.Brand, s Styles) string {
	var rows []string
	for i := 0; i < len(b.Upcoming); i += 2 {
		var cards []string
		for _, t := range b.Upcoming[i:min(i+2, len(b.Upcoming))] {
			cards = append(cards, renderCard(t, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	heading := s.Heading.Render("◷ UPCOMING TOOLS")
	return s.Section.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{heading}, rows...)...))
}

func renderCard(t brand.Tool, s Styles) string {
	title := s.Logo.Render(t.Title)
	badge := s.Badge.Render("SOON")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge)

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		s.System.Render(t.Status),
		s.Subtle.Render(t.Desc),
	))
}
