package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ftahirops/aegis/config"
	"github.com/ftahirops/aegis/model"
	"github.com/ftahirops/aegis/ui"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

// Options holds CLI flags.
type Options struct {
	ConfigPath  string
	RenderTab   string
	Width       int
	Height      int
	PrintConfig bool
	ShowVersion bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `aegis v%s — Command Center security dashboard

Usage:
  aegis [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -render TAB       Print one frame of TAB (overview, scan, network) and exit
  -print-config     Print the effective configuration as YAML and exit
  -version          Print version and exit

Options:
  -config PATH      Config file (default: ~/.config/aegis/config.yaml, or $AEGIS_CONFIG)
  -width N          Frame width for -render (default: 120)
  -height N         Frame height for -render (default: 40)

Keys:
  1 2 3             Overview, Security Scan, Network
  up/down, j/k      Previous / next entry
  tab, shift+tab    Cycle entries
  mouse click       Select a sidebar entry
  ?                 Toggle key help
  q, ctrl+c         Quit

Examples:
  aegis
  aegis -render overview -width 140
  AEGIS_UI_BAR_POLICY=clamp aegis
  aegis -print-config > ~/.config/aegis/config.yaml
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var opts Options
	flag.StringVar(&opts.ConfigPath, "config", "", "Config file path")
	flag.StringVar(&opts.RenderTab, "render", "", "Print one frame of the given tab and exit")
	flag.IntVar(&opts.Width, "width", 120, "Frame width for -render")
	flag.IntVar(&opts.Height, "height", 40, "Frame height for -render")
	flag.BoolVar(&opts.PrintConfig, "print-config", false, "Print the effective configuration and exit")
	flag.BoolVar(&opts.ShowVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	return run(opts, os.Stdout)
}

func run(opts Options, stdout io.Writer) error {
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "aegis v%s\n", Version)
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.PrintConfig {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	}

	uiOpts := ui.Options{
		BarPolicy:    cfg.BarPolicy(),
		Placeholders: cfg.UI.Placeholders,
	}

	if opts.RenderTab != "" {
		return runRender(opts, uiOpts, stdout)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting dashboard",
		zap.String("version", Version),
		zap.String("bar_policy", uiOpts.BarPolicy.String()),
		zap.Bool("placeholders", uiOpts.Placeholders),
		zap.Bool("mouse", cfg.UI.Mouse))

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(ui.NewModel(uiOpts, logger), progOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("dashboard closed")
	return nil
}

// runRender writes one static frame of the requested tab.
func runRender(opts Options, uiOpts ui.Options, stdout io.Writer) error {
	tab, err := model.ParseTab(opts.RenderTab)
	if err != nil {
		return err
	}
	if opts.Width < 60 || opts.Height < 12 {
		return fmt.Errorf("frame %dx%d too small (minimum 60x12)", opts.Width, opts.Height)
	}
	_, err = fmt.Fprintln(stdout, ui.Render(tab, opts.Width, opts.Height, uiOpts))
	return err
}
