package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// clipLines keeps the first n lines of s. The renderer shows the bottom of
// an oversized frame, which would shift every row away from its hit area.
func clipLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// clipWidth cuts every line wider than w to w cells, marking the cut with
// an ellipsis.
func clipWidth(s string, w int) string {
	if w <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if ansi.StringWidth(l) > w {
			lines[i] = ansi.Truncate(l, w, "…")
		}
	}
	return strings.Join(lines, "\n")
}

// hspace returns a blank block w cells wide, used as a gap in
// lipgloss.JoinHorizontal.
func hspace(w int) string {
	if w < 0 {
		w = 0
	}
	return strings.Repeat(" ", w)
}
