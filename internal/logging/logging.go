// Package logging sets up the process-wide slog logger. Output goes to a
// rotating file rather than stderr: the TUI owns the terminal, and writing
// diagnostics into it would corrupt the display.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/planvas/planvas/internal/config"
)

// Setup installs the default slog logger per the log configuration and
// returns a closer for the underlying file. With no log path configured,
// logging is discarded and the closer is a no-op.
func Setup(cfg config.LogConfig) io.Closer {
	if cfg.Path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
