package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/aegis/model"
)

const blockGlyphs = "▁▂▃▄▅▆▇█"

func TestThemeFor_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "cyan", themeFor("cyan").name)
	assert.Equal(t, "emerald", themeFor("emerald").name)
	assert.Equal(t, defaultThemeName, themeFor("magenta").name)
	assert.Equal(t, defaultThemeName, themeFor("").name)
}

func TestStatusCard_UnknownThemeRendersAsDefault(t *testing.T) {
	c := model.OverviewCards()[1]
	c.Theme = "magenta"
	got := renderStatusCard(c, 30, model.BarPassthrough)

	c.Theme = defaultThemeName
	want := renderStatusCard(c, 30, model.BarPassthrough)

	assert.Equal(t, want, got)
	assert.Contains(t, plain(got), "Memory Usage")
}

func TestStatusCard_EmptyBarsRenderNoChart(t *testing.T) {
	c := model.Card{Title: "Empty", Value: "0", Theme: "cyan"}
	out := plain(renderStatusCard(c, 30, model.BarPassthrough))

	assert.Contains(t, out, "Empty")
	assert.False(t, strings.ContainsAny(out, blockGlyphs), "no bar glyphs expected:\n%s", out)
	assert.Equal(t, "", microBars(nil, 20, model.BarPassthrough, lipgloss.NewStyle()))
	assert.Equal(t, "", microBars([]float64{}, 20, model.BarClamp, lipgloss.NewStyle()))
}

func TestStatusCard_TrendBadge(t *testing.T) {
	c := model.Card{Title: "T", Value: "V", TrendLabel: "+2%", Trend: model.TrendUp}
	assert.Contains(t, plain(renderStatusCard(c, 30, model.BarPassthrough)), "V   +2% ")

	c.TrendLabel = ""
	out := plain(renderStatusCard(c, 30, model.BarPassthrough))
	assert.NotContains(t, out, "+2%")
}

func TestStatusCard_Width(t *testing.T) {
	for _, c := range model.OverviewCards() {
		out := renderStatusCard(c, 35, model.BarPassthrough)
		assert.Equal(t, 35, lipgloss.Width(out), c.Title)
	}
}

func TestMicroBars_Shape(t *testing.T) {
	out := plain(microBars([]float64{100, 50, 0}, 20, model.BarPassthrough, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, cardChartRows)

	// 100% fills both rows, 50% fills the bottom row only.
	assert.Equal(t, "████"+strings.Repeat(" ", 10), lines[0])
	assert.Equal(t, "████ ████"+strings.Repeat(" ", 5), lines[1])
}

func TestMicroBars_PartialCell(t *testing.T) {
	// 25% of two rows is half of the bottom cell.
	out := plain(microBars([]float64{25}, 1, model.BarPassthrough, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, cardChartRows)
	assert.Equal(t, " ", lines[0])
	assert.Equal(t, "▄", lines[1])
}

func TestMicroBars_OutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		bars   []float64
		policy model.BarPolicy
		rows   int
	}{
		{"passthrough grows above chart", []float64{150}, model.BarPassthrough, 3},
		{"clamp keeps chart height", []float64{150}, model.BarClamp, cardChartRows},
		{"passthrough growth is capped", []float64{10000}, model.BarPassthrough, cardChartRows * cardOverflowLimit},
		{"negative passthrough", []float64{-40}, model.BarPassthrough, cardChartRows},
		{"negative clamp", []float64{-40}, model.BarClamp, cardChartRows},
		{"nan", []float64{math.NaN()}, model.BarPassthrough, cardChartRows},
		{"huge passthrough is capped", []float64{1e300}, model.BarPassthrough, cardChartRows * cardOverflowLimit},
		{"inf passthrough is capped", []float64{math.Inf(1)}, model.BarPassthrough, cardChartRows * cardOverflowLimit},
		{"inf clamp", []float64{math.Inf(1)}, model.BarClamp, cardChartRows},
		{"negative inf", []float64{math.Inf(-1)}, model.BarPassthrough, cardChartRows},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := plain(microBars(c.bars, 10, c.policy, lipgloss.NewStyle()))
			assert.Len(t, strings.Split(out, "\n"), c.rows)
		})
	}
}

func TestMicroBars_NegativeDrawsNothing(t *testing.T) {
	for _, p := range []model.BarPolicy{model.BarPassthrough, model.BarClamp} {
		out := plain(microBars([]float64{-40, -1}, 10, p, lipgloss.NewStyle()))
		assert.False(t, strings.ContainsAny(out, blockGlyphs), p.String())
	}
}

func TestMicroBars_ClampFillsFullColumn(t *testing.T) {
	out := plain(microBars([]float64{150}, 1, model.BarClamp, lipgloss.NewStyle()))
	assert.Equal(t, "█\n█", out)
}

func TestMicroBars_PassthroughGrowsMonotonically(t *testing.T) {
	prev := 0
	for _, v := range []float64{50, 150, 300, 1e6, 1e20, 1e300, math.Inf(1)} {
		out := plain(microBars([]float64{v}, 10, model.BarPassthrough, lipgloss.NewStyle()))
		rows := len(strings.Split(out, "\n"))
		assert.GreaterOrEqual(t, rows, prev, "value %g", v)
		prev = rows
	}
}

func TestMicroBars_TooManyBarsKeepColumns(t *testing.T) {
	bars := make([]float64, 60)
	for i := range bars {
		bars[i] = 50
	}
	const inner = 26
	out := plain(microBars(bars, inner, model.BarPassthrough, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, cardChartRows)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), inner)
	}
	// 50% fills the bottom row of every drawn column
	assert.Equal(t, (inner+1)/2, strings.Count(lines[1], "█"))
}

func TestMicroBars_TooManyBarsKeepsTrailing(t *testing.T) {
	bars := []float64{100, 100, 100, 0, 0}
	out := plain(microBars(bars, 3, model.BarPassthrough, lipgloss.NewStyle()))
	assert.False(t, strings.ContainsAny(out, blockGlyphs), "leading bars are dropped:\n%s", out)
}

func TestStatusCard_TooManyBarsKeepsCardHeight(t *testing.T) {
	bars := make([]float64, 60)
	for i := range bars {
		bars[i] = 50
	}
	c := model.Card{Title: "Dense", Value: "1", Theme: "cyan", Bars: bars}
	out := renderStatusCard(c, 30, model.BarPassthrough)
	// border, title, value, blank, chart rows, border
	assert.Equal(t, 4+cardChartRows+1, lipgloss.Height(out))
	assert.Equal(t, 30, lipgloss.Width(out))
}
