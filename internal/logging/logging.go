// Package logging builds the charmbracelet loggers used by the CLI, the
// terminal UI and the engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "mines"

// New creates a logger writing to w at the given level name.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger for a session that owns the terminal.
// Logs go to file when set and are discarded otherwise, so they never draw
// over the board. The returned closer releases the file.
func Open(file, level string) (*log.Logger, io.Closer, error) {
	if file == "" {
		logger, err := New(io.Discard, level)
		return logger, nopCloser{}, err
	}

	path, err := config.ExpandHome(file)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
