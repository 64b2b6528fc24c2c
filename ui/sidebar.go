package ui

import (
	"strings"

	"github.com/ftahirops/aegis/model"
)

// Sidebar geometry. Rows are counted from the top of the frame.
const (
	sidebarWidth    = 26 // including the right rule
	sidebarEntryTop = 4  // row of the first entry
	sidebarEntryGap = 2  // rows between consecutive entries
)

// sidebarRow returns the frame row holding the entry for t.
func sidebarRow(t model.Tab) int {
	return sidebarEntryTop + int(t)*sidebarEntryGap
}

// sidebarHit maps a frame cell to the sidebar entry drawn there.
func sidebarHit(x, y int) (model.Tab, bool) {
	if x < 0 || x >= sidebarWidth-1 {
		return model.TabOverview, false
	}
	for _, t := range model.Tabs() {
		if y == sidebarRow(t) {
			return t, true
		}
	}
	return model.TabOverview, false
}

// renderSidebar draws the brand, the navigation entries and the status
// footer, height rows tall. Exactly one entry is drawn active.
func renderSidebar(active model.Tab, height int) string {
	tabs := model.Tabs()
	minRows := sidebarRow(tabs[len(tabs)-1]) + 4
	if height < minRows {
		height = minRows
	}

	rows := make([]string, height)
	rows[1] = "  " + brandMarkStyle.Render("◆") + " " + brandStyle.Render("AEGIS")
	for _, t := range tabs {
		rows[sidebarRow(t)] = renderSidebarEntry(t, t == active)
	}
	rows[height-2] = " " + faintStyle.Render(strings.Repeat("─", sidebarWidth-3))
	rows[height-1] = "  " + statusDotStyle.Render("•") + " " + dimStyle.Render("System Active")

	inner := sidebarWidth - 1
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styledPad(r, inner))
		sb.WriteString(faintStyle.Render("│"))
	}
	return sb.String()
}

func renderSidebarEntry(t model.Tab, active bool) string {
	text := " " + t.Icon() + "  " + t.Label()
	if !active {
		return "  " + navIdleStyle.Render(text)
	}
	inner := sidebarWidth - 1
	line := " " + navBarStyle.Render("▌") + navActiveStyle.Render(text)
	// the dot sits two cells from the rule
	return styledPad(line, inner-3) + navDotStyle.Render("●")
}
