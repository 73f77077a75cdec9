package preprocess

import (
	"io"
	"log/slog"
)

// config carries construction settings for a ColumnTransformer.
type config struct {
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a ColumnTransformer.
type Option func(*config)

// WithLogger sets the logger for fit and transform summaries. Defaults to
// a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
