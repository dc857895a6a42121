package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger: the minimum level emitted and
// the output encoding. Unknown values fall back to "info" and "text".
type Logger struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format selects the handler encoding, "text" or "json".
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level name onto a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the configured format name.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}
