package prepkit

import (
	"errors"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// ErrInvalidConfig is returned when environment variables cannot be parsed.
var ErrInvalidConfig = errors.New("invalid prepkit config")

// Config carries environment-driven cleaning defaults.
type Config struct {
	CoerceNumeric        bool `env:"PREPKIT_COERCE_NUMERIC" envDefault:"true"`
	UnicodeNormalization bool `env:"PREPKIT_UNICODE_NORMALIZATION" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewPreprocessorFromConfig builds a preprocessor with defaults taken from
// cfg. Explicit options win over the config values.
func NewPreprocessorFromConfig(cfg Config, opts ...Option) *Preprocessor {
	var base []Option
	if !cfg.CoerceNumeric {
		base = append(base, WithoutCoercion())
	}
	if cfg.UnicodeNormalization {
		base = append(base, WithUnicodeNormalization())
	}
	return NewPreprocessor(append(base, opts...)...)
}
