package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a timestamped logger writing JSON lines to w.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Open appends to the file at path. The terminal belongs to the renderer,
// so logs never go to stdout. An empty path disables logging.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return log, f, nil
}

// OpenOrStderr behaves like Open when path is set and logs to stderr
// otherwise. Headless commands use it since they do not own the terminal.
func OpenOrStderr(path, level string) (zerolog.Logger, io.Closer, error) {
	if path != "" {
		return Open(path, level)
	}
	log, err := New(os.Stderr, level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return log, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
