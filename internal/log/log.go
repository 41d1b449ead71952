// Package log configures structured logging for lsgen.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures Init.
type Options struct {
	Verbose    bool
	JSONFormat bool
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Init installs the default slog logger. Only warnings and errors are shown
// unless Verbose is set.
func Init(opts Options) *slog.Logger {
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if opts.JSONFormat {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// Sink adapts logger to the func(messages ...any) hook taken by
// labelschema.Gen.SetLog. Messages starting with "Warning" or "Skipping"
// log at warn level, everything else at info.
func Sink(logger *slog.Logger) func(messages ...any) {
	return func(messages ...any) {
		parts := make([]string, len(messages))
		for i, m := range messages {
			parts[i] = fmt.Sprint(m)
		}
		msg := strings.Join(parts, " ")
		if strings.HasPrefix(msg, "Warning") || strings.HasPrefix(msg, "Skipping") {
			logger.Warn(msg)
			return
		}
		logger.Info(msg)
	}
}
