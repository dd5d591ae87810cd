package log

import (
	"context"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"
)

const errorKey = "LOG_ERROR"

// Verbosity levels accepted on the command line, 0 (crit) to 5 (trace).
// 命令行使用的日志详细级别，0 为 crit，5 为 trace。
const (
	legacyLevelCrit = iota
	legacyLevelError
	legacyLevelWarn
	legacyLevelInfo
	legacyLevelDebug
	legacyLevelTrace
)

const (
	levelMaxVerbosity slog.Level = math.MinInt
	LevelTrace        slog.Level = -8
	LevelDebug                   = slog.LevelDebug
	LevelInfo                    = slog.LevelInfo
	LevelWarn                    = slog.LevelWarn
	LevelError                   = slog.LevelError
	LevelCrit         slog.Level = 12
)

// FromLegacyLevel converts a numeric verbosity (0-5) to a slog level. Values
// above 5 clamp to trace, negative values to crit.
// FromLegacyLevel 将数字详细级别 (0-5) 转换为 slog 级别。
func FromLegacyLevel(lvl int) slog.Level {
	switch {
	case lvl <= legacyLevelCrit:
		return LevelCrit
	case lvl == legacyLevelError:
		return LevelError
	case lvl == legacyLevelWarn:
		return LevelWarn
	case lvl == legacyLevelInfo:
		return LevelInfo
	case lvl == legacyLevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// levelNames maps every known level to its short and its five character form.
var levelNames = map[slog.Level][2]string{
	LevelTrace: {"trace", "TRACE"},
	LevelDebug: {"debug", "DEBUG"},
	LevelInfo:  {"info", "INFO "},
	LevelWarn:  {"warn", "WARN "},
	LevelError: {"error", "ERROR"},
	LevelCrit:  {"crit", "CRIT "},
}

// LevelAlignedString returns the five character name of a level, padded
// so that terminal output lines up.
func LevelAlignedString(l slog.Level) string {
	if names, ok := levelNames[l]; ok {
		return names[1]
	}
	return "unknown level"
}

// LevelString returns the lower case name of a level.
// LevelString 返回日志级别的小写名称。
func LevelString(l slog.Level) string {
	if names, ok := levelNames[l]; ok {
		return names[0]
	}
	return "unknown"
}

// A Logger writes key/value pairs to a Handler.
// Logger 将键值对写入 Handler。
type Logger interface {
	// With returns a new Logger carrying this logger's attributes plus the given ones.
	With(ctx ...interface{}) Logger

	// New is identical to With.
	New(ctx ...interface{}) Logger

	// Log logs a message at the given level with context key/value pairs.
	Log(level slog.Level, msg string, ctx ...interface{})

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})

	// Crit logs a message at the crit level and exits the process.
	// Crit 以 crit 级别记录后退出进程。
	Crit(msg string, ctx ...interface{})

	// Write logs a message at the given level.
	Write(level slog.Level, msg string, attrs ...any)

	// Enabled reports whether records at the given level would be emitted.
	Enabled(ctx context.Context, level slog.Level) bool

	// Handler returns the handler the logger writes to.
	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a logger writing to h.
func NewLogger(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

// Write logs a message at the given level. The record's pc points at the
// caller of the exported logging method, three frames up.
// Write 以指定级别记录消息，记录中的 pc 指向调用方。
func (l *logger) Write(level slog.Level, msg string, attrs ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	if len(attrs)%2 != 0 {
		attrs = append(attrs, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(attrs...)
	l.inner.Handler().Handle(context.Background(), r)
}

func (l *logger) Log(level slog.Level, msg string, attrs ...any) {
	l.Write(level, msg, attrs...)
}

func (l *logger) With(ctx ...interface{}) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return l.With(ctx...)
}

func (l *logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.Write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.Write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.Write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.Write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.Write(LevelError, msg, ctx...) }

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}
