package model

import (
	"fmt"
	"strings"
)

// Trend is the direction shown on a status card badge.
type Trend int

const (
	TrendNeutral Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	}
	return "neutral"
}

// Card is one entry of the overview metrics grid.
type Card struct {
	Title      string
	Value      string
	TrendLabel string // empty hides the badge
	Trend      Trend
	Theme      string    // palette name; unknown names fall back to the default
	Bars       []float64 // percentage heights for the micro chart
}

// LogLevel is the severity of a console line.
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelWarn
	LevelSuccess
)

func (l LogLevel) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelSuccess:
		return "SUCCESS"
	}
	return "INFO"
}

// LogLine is one row of the system log console.
type LogLine struct {
	Time    string
	Level   LogLevel
	Message string
}

// BarPolicy controls how micro chart magnitudes outside 0-100 are drawn.
type BarPolicy int

const (
	// BarPassthrough draws values as given: above 100 grows past the chart
	// top, below 0 draws nothing.
	BarPassthrough BarPolicy = iota
	// BarClamp limits every value to 0-100 before drawing.
	BarClamp
)

func (p BarPolicy) String() string {
	if p == BarClamp {
		return "clamp"
	}
	return "passthrough"
}

// ParseBarPolicy accepts "passthrough" or "clamp". Empty means passthrough.
func ParseBarPolicy(s string) (BarPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "passthrough":
		return BarPassthrough, nil
	case "clamp":
		return BarClamp, nil
	}
	return BarPassthrough, fmt.Errorf("unknown bar policy %q (valid: passthrough, clamp)", s)
}

// OverviewCards returns the three cards of the overview grid. Each call
// returns fresh slices.
func OverviewCards() []Card {
	return []Card{
		{
			Title:      "CPU Load",
			Value:      "12%",
			TrendLabel: "+2%",
			Trend:      TrendUp,
			Theme:      "indigo",
			Bars:       []float64{20, 45, 28, 80, 50, 43, 12},
		},
		{
			Title:      "Memory Usage",
			Value:      "4.2 GB",
			TrendLabel: "-0.5%",
			Trend:      TrendDown,
			Theme:      "cyan",
			Bars:       []float64{60, 55, 58, 52, 48, 50, 55},
		},
		{
			Title:      "Threat Level",
			Value:      "LOW",
			TrendLabel: "Secure",
			Trend:      TrendNeutral,
			Theme:      "emerald",
			Bars:       []float64{10, 10, 5, 20, 5, 5, 0},
		},
	}
}

// OverviewLog returns the console lines of the overview, oldest first.
func OverviewLog() []LogLine {
	return []LogLine{
		{Time: "10:42:01", Level: LevelInfo, Message: "Aegis Daemon initialized successfully."},
		{Time: "10:42:02", Level: LevelInfo, Message: "Connected to local threat database (v4.2.0)."},
		{Time: "10:42:05", Level: LevelWarn, Message: "Port 8080 is open to external traffic."},
		{Time: "10:42:05", Level: LevelSuccess, Message: "Firewall rules updated. Traffic secured."},
	}
}
