// Package logging adapts log/slog to the calculation engine's Logger interface.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// SlogLogger forwards printf-style engine logs to a slog.Logger
type SlogLogger struct {
	l *slog.Logger
}

// New builds a text logger writing to w. Verbose enables debug output.
func New(w io.Writer, verbose bool) *SlogLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &SlogLogger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Wrap adapts an existing slog.Logger; nil uses slog.Default().
func Wrap(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

// Slog exposes the underlying logger for structured call sites
func (s *SlogLogger) Slog() *slog.Logger { return s.l }

func (s *SlogLogger) Debugf(format string, args ...any) { s.log(slog.LevelDebug, format, args) }
func (s *SlogLogger) Infof(format string, args ...any)  { s.log(slog.LevelInfo, format, args) }
func (s *SlogLogger) Warnf(format string, args ...any)  { s.log(slog.LevelWarn, format, args) }
func (s *SlogLogger) Errorf(format string, args ...any) { s.log(slog.LevelError, format, args) }

func (s *SlogLogger) log(level slog.Level, format string, args []any) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, args...))
}
