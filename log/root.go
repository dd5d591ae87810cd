package log

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var root atomic.Value

// Nothing is printed until a command installs a real handler.
// 在命令安装真正的处理器之前，默认丢弃所有日志。
func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault replaces the root logger. When l is backed by slog, the
// standard library default logger is pointed at it too.
// SetDefault 替换根日志记录器。
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger.
func Root() Logger {
	return root.Load().(Logger)
}

// The package level helpers call Write directly so that every path into
// Write has the same call depth and the recorded pc is the caller's.
// 以下函数直接调用 Write，以保证调用深度一致，记录的 pc 指向业务代码。

// Trace logs at the trace level on the root logger.
//
//	log.Trace("Found dispatch prologue", "pc", pc)
func Trace(msg string, ctx ...interface{}) {
	Root().Write(LevelTrace, msg, ctx...)
}

// Debug logs at the debug level on the root logger.
func Debug(msg string, ctx ...interface{}) {
	Root().Write(LevelDebug, msg, ctx...)
}

// Info logs at the info level on the root logger.
func Info(msg string, ctx ...interface{}) {
	Root().Write(LevelInfo, msg, ctx...)
}

// Warn logs at the warn level on the root logger.
func Warn(msg string, ctx ...interface{}) {
	Root().Write(LevelWarn, msg, ctx...)
}

// Error logs at the error level on the root logger.
func Error(msg string, ctx ...interface{}) {
	Root().Write(LevelError, msg, ctx...)
}

// Crit logs at the crit level on the root logger, then exits.
// Crit 记录后以状态码 1 退出。
func Crit(msg string, ctx ...interface{}) {
	Root().Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

// New returns a child of the root logger carrying the given context.
func New(ctx ...interface{}) Logger {
	return Root().With(ctx...)
}
