package cleaner

import (
	"io"
	"log/slog"
)

// config carries the settings for a cleaning run.
type config struct {
	coerce    bool
	normalize bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		coerce: true,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a cleaning run.
type Option func(*config)

// WithoutCoercion keeps numeric-looking text as compacted text instead of
// parsing it into numbers.
func WithoutCoercion() Option {
	return func(c *config) {
		c.coerce = false
	}
}

// WithUnicodeNormalization NFC-normalizes text cells before cleaning. Off
// by default.
func WithUnicodeNormalization() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// WithLogger sets the logger for debug-level cleaning summaries. Defaults
// to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
