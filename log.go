package dgl

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Level is a diagnostic message priority. Messages are emitted when their level is at or
// above the verbosity configured on the [Logger].
type Level = slog.Level

// Message levels, from most to least important.
const (
	LevelFatal      Level = slog.LevelError + 4
	LevelQuiet      Level = slog.LevelError + 2 // Verbosity only: suppresses everything but fatal errors.
	LevelCritical   Level = slog.LevelError
	LevelWarning    Level = slog.LevelWarn
	LevelInfo       Level = slog.LevelInfo
	LevelLog        Level = slog.LevelDebug
	LevelVerboseLog Level = slog.LevelDebug - 4
)

func levelName(l Level) string {
	switch {
	case l >= LevelFatal:
		return "FATAL"
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= LevelWarning:
		return "WARNING"
	case l >= LevelInfo:
		return "INFO"
	case l >= LevelLog:
		return "LOG"
	default:
		return "VERBOSE"
	}
}

// nopHandler discards all records; Enabled returns false so messages are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Logger is the leveled diagnostic sink. It is passed explicitly to the components that
// report anomalies; there is no process-wide verbosity setting.
type Logger struct {
	l *slog.Logger

	// Exit is called after a fatal message. Defaults to os.Exit.
	Exit func(code int)
}

// NewLogger returns a logger writing text records to w, emitting messages at or above verbosity.
func NewLogger(w io.Writer, verbosity Level) *Logger {
	return NewLoggerWithHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: verbosity,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelName(l))
				}
			}
			return a
		},
	}))
}

// NewLoggerWithHandler returns a logger backed by an arbitrary slog handler.
func NewLoggerWithHandler(h slog.Handler) *Logger {
	if h == nil {
		h = nopHandler{}
	}
	return &Logger{
		l:    slog.New(h).With("lib", "dgl"),
		Exit: os.Exit,
	}
}

// Discard returns a logger that emits nothing.
func Discard() *Logger {
	return &Logger{l: slog.New(nopHandler{}), Exit: os.Exit}
}

// orDiscard allows components to hold a nil *Logger.
func (l *Logger) orDiscard() *Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Enabled reports if messages at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.l.Enabled(context.Background(), level)
}

// Message emits msg at level with optional key/value attributes.
func (l *Logger) Message(level Level, msg string, args ...any) {
	l.l.Log(context.Background(), level, msg, args...)
	if level >= LevelFatal {
		l.Exit(2)
	}
}

// Fatal emits msg and aborts the process.
func (l *Logger) Fatal(msg string, args ...any) { l.Message(LevelFatal, msg, args...) }

// Critical emits msg at critical level.
func (l *Logger) Critical(msg string, args ...any) { l.Message(LevelCritical, msg, args...) }

// Warning emits msg at warning level.
func (l *Logger) Warning(msg string, args ...any) { l.Message(LevelWarning, msg, args...) }

// Info emits msg at info level.
func (l *Logger) Info(msg string, args ...any) { l.Message(LevelInfo, msg, args...) }

// Log emits msg at log level.
func (l *Logger) Log(msg string, args ...any) { l.Message(LevelLog, msg, args...) }

// Verbose emits msg at verbose log level.
func (l *Logger) Verbose(msg string, args ...any) { l.Message(LevelVerboseLog, msg, args...) }
