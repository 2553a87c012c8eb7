// Package logging builds the charm logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroids/internal/core"
)

// Options controls where logs go and how much is written.
type Options struct {
	Level  string // debug, info, warn, error
	File   string // Append to this file when set
	Quiet  bool   // Discard output when no file is set (alt-screen modes)
	Prefix string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. The returned closer releases the log file, if any.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "asteroids"
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		if dir := filepath.Dir(opts.File); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.File, err)
		}
		w, closer = f, f
	case opts.Quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Events logs the notable events of one tick at debug level.
func Events(l *log.Logger, res core.StepResult) {
	for _, e := range res.Events {
		switch e {
		case core.EventLevelCleared:
			l.Debug("level cleared", "stage", res.State.Level+1, "score", res.State.Score)
		case core.EventHighScore:
			l.Debug("new high score", "score", res.State.HighScore)
		case core.EventShipExploded:
			l.Debug("ship destroyed", "lives", res.State.Lives)
		case core.EventGameOver:
			l.Info("game over", "score", res.State.Score, "stage", res.State.Level+1)
		}
	}
}
