package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/aegis/model"
)

const (
	cardGap      = 2
	minCardWidth = 24
)

// renderOverview draws the metrics grid above the log console. Cards sit
// side by side when each gets at least minCardWidth cells, otherwise they
// stack.
func renderOverview(width int, policy model.BarPolicy, cursorOn bool) string {
	cards := model.OverviewCards()

	var grid string
	cw := (width - cardGap*(len(cards)-1)) / len(cards)
	if cw >= minCardWidth {
		parts := make([]string, 0, 2*len(cards))
		for i, c := range cards {
			if i > 0 {
				parts = append(parts, hspace(cardGap))
			}
			parts = append(parts, renderStatusCard(c, cw, policy))
		}
		grid = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		parts := make([]string, 0, len(cards))
		for _, c := range cards {
			parts = append(parts, renderStatusCard(c, width, policy))
		}
		grid = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	return grid + "\n\n" + renderLogPanel(model.OverviewLog(), width, cursorOn)
}

// renderPlaceholder stands in for a tab that has no view yet.
func renderPlaceholder(t model.Tab, width int) string {
	w := width - 2
	if w < 20 {
		w = 20
	}
	return placeholderStyle.Width(w).Render(fmt.Sprintf("%s %s\n\nThis view is not available yet.", t.Icon(), t.Label()))
}

// renderHeader draws the page title block with the scan button on the right.
func renderHeader(width int) string {
	left := titleStyle.Render("Command Center") + "\n" +
		subtitleStyle.Render("Real-time telemetry and threat suppression.")
	button := buttonStyle.Render("Initiate Scan")

	gap := width - lipgloss.Width(left) - lipgloss.Width(button)
	if gap < 2 {
		return left + "\n\n" + button
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, hspace(gap), button)
}
