package commands

import (
	"log/slog"
	"os"
)

// levelOverridden tracks whether a command-line flag already fixed the
// log level, in which case the config file level is ignored.
var levelOverridden bool

// ConfigureLogging installs the default slog handler. The verbose and
// quiet flags take precedence over any configured level.
func ConfigureLogging(verbose, quiet bool) {
	level := slog.LevelInfo

	switch {
	case verbose:
		level = slog.LevelDebug
		levelOverridden = true
	case quiet:
		level = slog.LevelError
		levelOverridden = true
	}

	setHandler(level)
}

// ApplyConfigLevel applies the configured log level unless a flag
// already overrode it. Unknown levels fall back to info.
func ApplyConfigLevel(level string) {
	if levelOverridden {
		return
	}

	parsed := slog.LevelInfo

	switch level {
	case "debug":
		parsed = slog.LevelDebug
	case "warn":
		parsed = slog.LevelWarn
	case "error":
		parsed = slog.LevelError
	}

	setHandler(parsed)
}

func setHandler(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
