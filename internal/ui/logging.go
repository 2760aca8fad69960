package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger keeps the printf-style helpers used across the commands and sends
// everything through a slog text handler.
type Logger struct {
	Debug bool
	s     *slog.Logger
}

func NewLogger(debug bool) *Logger {
	return NewLoggerTo(os.Stderr, debug)
}

func NewLoggerTo(w io.Writer, debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return &Logger{
		Debug: debug,
		s:     slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Slog exposes the underlying logger for the logging decorators.
func (l *Logger) Slog() *slog.Logger {
	return l.s
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.s.Debug(line(format, args...))
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.s.Info(line(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.s.Error(line(format, args...))
}

func line(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
