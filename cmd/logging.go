package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ftahirops/aegis/config"
)

// newLogger builds a JSON file logger. The TUI owns the terminal, so with no
// file configured logging is disabled.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	if lc.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{lc.File}
	zc.ErrorOutputPaths = []string{lc.File}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", lc.File, err)
	}
	return logger, nil
}
