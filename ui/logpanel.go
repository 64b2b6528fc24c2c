package ui

import (
	"strings"

	"github.com/ftahirops/aegis/model"
)

const logLevelWidth = 8 // "SUCCESS" plus a space

// renderLogPanel draws the system log console width cells wide. The last
// row holds the prompt cursor, visible when cursorOn.
func renderLogPanel(lines []model.LogLine, width int, cursorOn bool) string {
	var sb strings.Builder
	sb.WriteString(logHeaderStyle.Render("● SYSTEM LOG STREAM"))
	sb.WriteString("\n\n")
	for _, l := range lines {
		msg := textStyle
		if l.Level == model.LevelSuccess {
			msg = okStyle
		}
		sb.WriteString(faintStyle.Render(l.Time))
		sb.WriteString("  ")
		sb.WriteString(styledPad(levelStyle(l.Level).Render(l.Level.String()), logLevelWidth))
		sb.WriteString(msg.Render(l.Message))
		sb.WriteString("\n")
	}
	cursor := " "
	if cursorOn {
		cursor = "_"
	}
	sb.WriteString(logCursorStyle.Render(cursor))

	w := width - 2
	if w < 20 {
		w = 20
	}
	return logPanelStyle.Width(w).Render(sb.String())
}
