// Package logging builds the application logger. The TUI owns the
// terminal, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Makepad-fr/brickscan/internal/config"
)

// New returns a logger for cfg and a func that releases its file.
func New(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), f.Close, nil
}
