package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/aegis/model"
)

const (
	cardChartRows     = 2 // rows that represent 100%
	cardOverflowLimit = 4 // passthrough never grows past this many times cardChartRows
	cardBarMaxWidth   = 4
)

// subBlocks are fractional fills for one cell, empty through full.
var subBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderStatusCard draws one metric card width cells wide.
//
//	╭──────────────────────────╮
//	│ CPU Load                 │
//	│ 12%  +2%                 │
//	│                          │
//	│ ▆▆ ▆▆ ▆▆ ██ ▆▆ ▆▆ ▂▂     │
//	│ ▃▃ ██ ▅▅ ██ ██ ██ ▂▂     │
//	╰──────────────────────────╯
func renderStatusCard(c model.Card, width int, policy model.BarPolicy) string {
	th := themeFor(c.Theme)
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	var sb strings.Builder
	sb.WriteString(cardTitleStyle.Foreground(th.accent).Render(c.Title))
	sb.WriteString("\n")
	sb.WriteString(cardValueStyle.Render(c.Value))
	if c.TrendLabel != "" {
		sb.WriteString("  ")
		sb.WriteString(trendBadgeStyle(c.Trend).Render(c.TrendLabel))
	}
	if chart := microBars(c.Bars, inner, policy, lipgloss.NewStyle().Foreground(th.bar)); chart != "" {
		sb.WriteString("\n\n")
		sb.WriteString(chart)
	}

	return cardStyle.BorderForeground(th.border).Width(inner + 2).Render(sb.String())
}

// microBars renders one column per magnitude, bottom-aligned, with 100%
// filling cardChartRows rows. An empty sequence renders nothing. When more
// magnitudes are given than fit in width (one cell plus a gap each), the
// leading ones are dropped and the most recent (trailing) ones are drawn.
func microBars(bars []float64, width int, policy model.BarPolicy, style lipgloss.Style) string {
	if maxCols := (width + 1) / 2; len(bars) > maxCols {
		if maxCols < 1 {
			maxCols = 1
		}
		bars = bars[len(bars)-maxCols:]
	}
	n := len(bars)
	if n == 0 {
		return ""
	}

	colW := (width - (n - 1)) / n
	if colW < 1 {
		colW = 1
	}
	if colW > cardBarMaxWidth {
		colW = cardBarMaxWidth
	}

	vals := make([]float64, n)
	peak := 0.0
	for i, v := range bars {
		if math.IsNaN(v) {
			v = 0
		}
		if policy == model.BarClamp {
			v = math.Max(0, math.Min(100, v))
		}
		vals[i] = v
		peak = math.Max(peak, v)
	}

	rows := cardChartRows
	// compare as float: +Inf or huge peaks do not fit in an int
	if h := peak / 100 * cardChartRows; h > cardChartRows*cardOverflowLimit {
		rows = cardChartRows * cardOverflowLimit
	} else if h > float64(rows) {
		rows = int(math.Ceil(h))
	}

	lines := make([]string, 0, rows)
	for row := rows - 1; row >= 0; row-- {
		var sb strings.Builder
		for i, v := range vals {
			if i > 0 {
				sb.WriteByte(' ')
			}
			ch := barCell(v/100*cardChartRows, row)
			if ch == ' ' {
				sb.WriteString(strings.Repeat(" ", colW))
				continue
			}
			sb.WriteString(style.Render(strings.Repeat(string(ch), colW)))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// barCell picks the glyph for one cell of a column whose height is h rows.
func barCell(h float64, row int) rune {
	bottom := float64(row)
	switch {
	case h >= bottom+1:
		return '█'
	case h <= bottom:
		return ' '
	}
	idx := int((h - bottom) * 8)
	if idx >= len(subBlocks) {
		idx = len(subBlocks) - 1
	}
	return subBlocks[idx]
}
