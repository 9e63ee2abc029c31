package clouds

import (
	"log/slog"
	"os"
)

// logLevel controls the level of diagnostic logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// Logger writes diagnostics to stderr. Backends share it so a single
// SetVerbose call covers the whole process.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
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
