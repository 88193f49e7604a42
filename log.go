package learngl

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses Debug records.
var logLevel = new(slog.LevelVar)

// logger is the default logger for the renderer and the shader pipeline.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging on the package logger.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// Logger returns the package logger. It writes to stderr at the level
// chosen by SetVerbose.
func Logger() *slog.Logger {
	return logger
}
