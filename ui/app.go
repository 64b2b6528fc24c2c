package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ftahirops/aegis/model"
)

// Options carries the presentation settings resolved at startup.
type Options struct {
	BarPolicy    model.BarPolicy
	Placeholders bool // draw a stub for tabs without a view instead of nothing
}

const blinkInterval = 530 * time.Millisecond

type blinkMsg time.Time

var contentStyle = lipgloss.NewStyle().Padding(1, 2)

// Model is the bubbletea model. The active tab is the only state the
// dashboard itself owns; size, help and cursor are terminal bookkeeping.
type Model struct {
	opts   Options
	log    *zap.Logger
	width  int
	height int

	active   model.Tab
	showHelp bool
	cursorOn bool
}

// NewModel creates a dashboard with the overview tab active. A nil logger
// disables logging.
func NewModel(opts Options, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		opts:     opts,
		log:      logger,
		active:   model.TabOverview,
		cursorOn: true,
	}
}

// Active reports the selected tab.
func (m Model) Active() model.Tab { return m.active }

// Select makes t the active tab. Every tab is a valid target and selecting
// the active tab changes nothing.
func (m Model) Select(t model.Tab) Model {
	if t != m.active {
		m.log.Debug("tab selected", zap.String("tab", t.ID()), zap.String("from", m.active.ID()))
	}
	m.active = t
	return m
}

func (m Model) Init() tea.Cmd {
	return blink()
}

func blink() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg { return blinkMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case blinkMsg:
		m.cursorOn = !m.cursorOn
		return m, blink()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if t, ok := sidebarHit(msg.X, msg.Y); ok {
			m = m.Select(t)
		}

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.log.Info("quit requested", zap.String("key", key))
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "1", "2", "3":
			m = m.Select(model.Tabs()[key[0]-'1'])
		case "down", "j", "tab":
			m = m.Select(m.active.Next())
		case "up", "k", "shift+tab":
			m = m.Select(m.active.Prev())
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	inner := m.width - sidebarWidth - 4
	if inner < 30 {
		inner = 30
	}
	side := renderSidebar(m.active, m.height)
	content := contentStyle.Render(m.renderContent(inner))
	frame := lipgloss.JoinHorizontal(lipgloss.Top, side, content)
	return clipWidth(clipLines(frame, m.height), m.width)
}

// renderContent draws the header, the active tab's view and the key hint.
// Tabs without a view draw no body unless placeholders are enabled.
func (m Model) renderContent(width int) string {
	out := renderHeader(width)

	var body string
	switch m.active {
	case model.TabOverview:
		body = renderOverview(width, m.opts.BarPolicy, m.cursorOn)
	case model.TabScan, model.TabNetwork:
		if m.opts.Placeholders {
			body = renderPlaceholder(m.active, width)
		}
	}
	if body != "" {
		out += "\n\n" + body
	}
	return out + "\n\n" + m.renderHelp()
}

func (m Model) renderHelp() string {
	if !m.showHelp {
		return helpStyle.Render("? keys")
	}
	return helpStyle.Render("1-3 jump · ↑/↓ j/k move · tab cycle · click select · ? hide · q quit")
}

// Render returns one frame of the dashboard with tab active, for
// non-interactive output.
func Render(tab model.Tab, width, height int, opts Options) string {
	m := NewModel(opts, nil).Select(tab)
	m.width = width
	m.height = height
	return m.View()
}
