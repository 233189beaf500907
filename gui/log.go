package gui

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel gates the package's debug output. SetVerbose(true) lowers it to Debug.
var logLevel = new(slog.LevelVar)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// SetVerbose turns debug logging of focus, popup and frame events on or off.
// Call it from main after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// Logger returns the logger used by gui and by widgets built on top of it.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the logger returned by Logger. Its handler should
// honour the level set through SetVerbose if that switch is to keep working.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// LogLevel exposes the level variable so replacement handlers can share it.
func LogLevel() *slog.LevelVar { return logLevel }
