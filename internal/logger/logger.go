// Package logger configures the structured file logger
package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	Path  string
	Level slog.Level
}

// New returns a JSON logger backed by a rotating file. The returned closer
// flushes and closes the file.
func New(opts Options) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return NewWithWriter(w, opts.Level), w
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(h)
}
