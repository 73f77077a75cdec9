package prepkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepkit/prepkit"
	"github.com/prepkit/prepkit/pkg/frame"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := prepkit.LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.CoerceNumeric)
		assert.False(t, cfg.UnicodeNormalization)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("PREPKIT_COERCE_NUMERIC", "false")
		t.Setenv("PREPKIT_UNICODE_NORMALIZATION", "true")

		cfg, err := prepkit.LoadConfig()
		require.NoError(t, err)

		assert.False(t, cfg.CoerceNumeric)
		assert.True(t, cfg.UnicodeNormalization)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		t.Setenv("PREPKIT_COERCE_NUMERIC", "not-a-bool")

		_, err := prepkit.LoadConfig()
		assert.ErrorIs(t, err, prepkit.ErrInvalidConfig)
	})
}

func TestNewPreprocessorFromConfig(t *testing.T) {
	t.Run("config disables coercion", func(t *testing.T) {
		tbl, err := frame.New(frame.NewText("n", []string{"'1'", "'2'"}))
		require.NoError(t, err)

		p := prepkit.NewPreprocessorFromConfig(prepkit.Config{CoerceNumeric: false})
		require.NoError(t, p.Fit(tbl))

		// Numeric-looking text stayed text, so the column is categorical.
		assert.Equal(t, []string{"n=1", "n=2"}, p.FeatureNames())
	})

	t.Run("explicit options win", func(t *testing.T) {
		tbl, err := frame.New(frame.NewText("n", []string{"'1'", "'2'"}))
		require.NoError(t, err)

		p := prepkit.NewPreprocessorFromConfig(
			prepkit.Config{CoerceNumeric: true},
			prepkit.WithoutCoercion(),
		)
		require.NoError(t, p.Fit(tbl))

		assert.Equal(t, []string{"n=1", "n=2"}, p.FeatureNames())
	})
}
