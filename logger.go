package astibimap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
)

// Logger is the logger used to report ignored collisions, rollbacks and evictions
type Logger interface {
	Debugf(format string, v ...any)
}

type nopLogger struct{}

func newNopLogger() *nopLogger { return &nopLogger{} }

func (l *nopLogger) Debugf(format string, v ...any) {}

type slogLogger struct {
	l *slog.Logger
}

// AdaptSlog adapts a *slog.Logger into a Logger
func AdaptSlog(l *slog.Logger) Logger {
	if l == nil {
		return newNopLogger()
	}
	return &slogLogger{l: l}
}

func (l *slogLogger) Debugf(format string, v ...any) {
	// Avoid formatting when debug is disabled
	if !l.l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.l.Debug(fmt.Sprintf(format, v...))
}

type zerologLogger struct {
	l zerolog.Logger
}

// AdaptZerolog adapts a zerolog.Logger into a Logger
func AdaptZerolog(l zerolog.Logger) Logger {
	return &zerologLogger{l: l}
}

func (l *zerologLogger) Debugf(format string, v ...any) {
	l.l.Debug().Msgf(format, v...)
}
