package prepkit

import (
	"log/slog"

	"github.com/prepkit/prepkit/pkg/cleaner"
	"github.com/prepkit/prepkit/pkg/preprocess"
)

// config carries construction settings for a Preprocessor.
type config struct {
	coerce    bool
	normalize bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{coerce: true}
}

// Option configures a Preprocessor.
type Option func(*config)

// WithoutCoercion keeps numeric-looking text as text during cleaning.
func WithoutCoercion() Option {
	return func(c *config) {
		c.coerce = false
	}
}

// WithUnicodeNormalization NFC-normalizes text cells before cleaning.
func WithUnicodeNormalization() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// WithLogger threads one logger through cleaning and feature assembly.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func (c config) cleanerOptions() []cleaner.Option {
	var opts []cleaner.Option
	if !c.coerce {
		opts = append(opts, cleaner.WithoutCoercion())
	}
	if c.normalize {
		opts = append(opts, cleaner.WithUnicodeNormalization())
	}
	if c.logger != nil {
		opts = append(opts, cleaner.WithLogger(c.logger))
	}
	return opts
}

func (c config) transformerOptions() []preprocess.Option {
	var opts []preprocess.Option
	if c.logger != nil {
		opts = append(opts, preprocess.WithLogger(c.logger))
	}
	return opts
}
