package cli

import (
	"io"
	"log/slog"

	"github.com/mcoot/randstr/internal/config"
)

// Output formats accepted by --output
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns the settings the CLI starts from. Logging defaults
// to warn so an ordinary run writes nothing but the generated string.
func DefaultConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.LogLevel = slog.LevelWarn
	return cfg
}

// newLogger builds the CLI logger: plain text on w without timestamps
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
