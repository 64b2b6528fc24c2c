package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/aegis/model"
)

var (
	// Midnight void palette
	colorVoid950 = lipgloss.Color("#020617")
	colorVoid800 = lipgloss.Color("#1E293B")

	// Neon accents
	colorCyan400    = lipgloss.Color("#22D3EE")
	colorCyan500    = lipgloss.Color("#06B6D4")
	colorIndigo400  = lipgloss.Color("#818CF8")
	colorIndigo500  = lipgloss.Color("#6366F1")
	colorEmerald400 = lipgloss.Color("#34D399")
	colorEmerald500 = lipgloss.Color("#10B981")

	// Text tones
	colorWhite    = lipgloss.Color("#FFFFFF")
	colorSlate300 = lipgloss.Color("#CBD5E1")
	colorSlate400 = lipgloss.Color("#94A3B8")
	colorSlate500 = lipgloss.Color("#64748B")
	colorSlate600 = lipgloss.Color("#475569")
	colorSlate700 = lipgloss.Color("#334155")

	colorRed400    = lipgloss.Color("#F87171")
	colorYellow400 = lipgloss.Color("#FACC15")
	colorGreen400  = lipgloss.Color("#4ADE80")
	colorGreen500  = lipgloss.Color("#22C55E")
	colorBlue400   = lipgloss.Color("#60A5FA")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSlate400)
	textStyle     = lipgloss.NewStyle().Foreground(colorSlate300)
	dimStyle      = lipgloss.NewStyle().Foreground(colorSlate500)
	faintStyle    = lipgloss.NewStyle().Foreground(colorSlate600)
	okStyle       = lipgloss.NewStyle().Foreground(colorGreen400)
	helpStyle     = lipgloss.NewStyle().Foreground(colorSlate500)

	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	brandMarkStyle = lipgloss.NewStyle().Foreground(colorCyan400)

	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorVoid800)
	navBarStyle    = lipgloss.NewStyle().Foreground(colorIndigo500).Background(colorVoid800)
	navDotStyle    = lipgloss.NewStyle().Foreground(colorCyan400)
	navIdleStyle   = lipgloss.NewStyle().Foreground(colorSlate400)
	statusDotStyle = lipgloss.NewStyle().Foreground(colorGreen500)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorVoid950).
			Background(colorCyan500).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	logPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate700).
			Padding(0, 2)

	logHeaderStyle = lipgloss.NewStyle().Foreground(colorSlate500)
	logCursorStyle = lipgloss.NewStyle().Foreground(colorCyan400)

	placeholderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSlate700).
				Foreground(colorSlate500).
				Padding(1, 2)
)

// cardTheme is the named color bundle a status card looks up.
type cardTheme struct {
	name   string
	accent lipgloss.Color // title
	bar    lipgloss.Color
	border lipgloss.Color
}

const defaultThemeName = "indigo"

var cardThemes = map[string]cardTheme{
	"indigo":  {name: "indigo", accent: colorIndigo400, bar: colorIndigo500, border: colorIndigo500},
	"cyan":    {name: "cyan", accent: colorCyan400, bar: colorCyan500, border: colorCyan500},
	"emerald": {name: "emerald", accent: colorEmerald400, bar: colorEmerald500, border: colorEmerald500},
}

// themeFor returns the named theme, or the default theme for unknown names.
func themeFor(name string) cardTheme {
	if th, ok := cardThemes[name]; ok {
		return th
	}
	return cardThemes[defaultThemeName]
}

func trendBadgeStyle(t model.Trend) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch t {
	case model.TrendUp:
		return base.Foreground(colorRed400).Background(lipgloss.Color("#3B1219"))
	case model.TrendDown:
		return base.Foreground(colorEmerald400).Background(lipgloss.Color("#0B2E26"))
	default:
		return base.Foreground(colorSlate300).Background(colorSlate700)
	}
}

func levelStyle(l model.LogLevel) lipgloss.Style {
	switch l {
	case model.LevelInfo:
		return lipgloss.NewStyle().Foreground(colorBlue400)
	case model.LevelWarn:
		return lipgloss.NewStyle().Foreground(colorYellow400)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen400)
	}
}
