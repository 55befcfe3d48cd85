package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Top-level keys are renamed so log lines read timestamp / level / message.
var keyNames = map[string]string{
	slog.TimeKey:    "timestamp",
	slog.LevelKey:   "level",
	slog.MessageKey: "message",
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameKeys,
	}))
}

// Init installs New(w, level) as the default slog logger.
func Init(w io.Writer, level slog.Leveler) {
	slog.SetDefault(New(w, level))
}

func renameKeys(groups []string, a slog.Attr) slog.Attr {
	// Attributes inside groups keep their names, even "time" or "msg".
	if len(groups) > 0 {
		return a
	}
	if name, ok := keyNames[a.Key]; ok {
		a.Key = name
	}
	return a
}

// ParseLevel maps a config value to a level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
