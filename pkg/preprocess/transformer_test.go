package preprocess_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepkit/prepkit/pkg/frame"
	"github.com/prepkit/prepkit/pkg/preprocess"
)

func mixedTable(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.New(
		frame.NewNumeric("age", []float64{1, 2, 3}),
		frame.NewText("city", []string{"a", "b", "a"}),
	)
	require.NoError(t, err)
	return tbl
}

func TestNewColumnTransformer(t *testing.T) {
	t.Parallel()

	t.Run("classifies columns by kind", func(t *testing.T) {
		t.Parallel()
		tbl, err := frame.New(
			frame.NewText("city", []string{"a"}),
			frame.NewNumeric("age", []float64{1}),
			frame.NewNumeric("income", []float64{2}),
			frame.NewAny("raw", []frame.Cell{frame.Str("x")}),
		)
		require.NoError(t, err)

		ct := preprocess.NewColumnTransformer(tbl)
		assert.Equal(t, []string{"age", "income"}, ct.NumericColumns())
		assert.Equal(t, []string{"city", "raw"}, ct.CategoricalColumns())
		assert.False(t, ct.Fitted())
		assert.Equal(t, uuid.Nil, ct.FitID())
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		tbl, err := frame.New()
		require.NoError(t, err)

		ct := preprocess.NewColumnTransformer(tbl)
		assert.Empty(t, ct.NumericColumns())
		assert.Empty(t, ct.CategoricalColumns())
	})
}

func TestColumnTransformerLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("transform before fit fails", func(t *testing.T) {
		t.Parallel()
		tbl := mixedTable(t)
		ct := preprocess.NewColumnTransformer(tbl)

		_, err := ct.Transform(tbl)
		assert.ErrorIs(t, err, preprocess.ErrNotFitted)
	})

	t.Run("second fit fails", func(t *testing.T) {
		t.Parallel()
		tbl := mixedTable(t)
		ct := preprocess.NewColumnTransformer(tbl)

		require.NoError(t, ct.Fit(tbl))
		assert.ErrorIs(t, ct.Fit(tbl), preprocess.ErrAlreadyFitted)
	})

	t.Run("fit assigns an id", func(t *testing.T) {
		t.Parallel()
		tbl := mixedTable(t)
		ct := preprocess.NewColumnTransformer(tbl)

		require.NoError(t, ct.Fit(tbl))
		assert.True(t, ct.Fitted())
		assert.NotEqual(t, uuid.Nil, ct.FitID())
	})
}

func TestColumnTransformerTransform(t *testing.T) {
	t.Parallel()

	t.Run("fit transform round trip", func(t *testing.T) {
		t.Parallel()
		tbl := mixedTable(t)
		ct := preprocess.NewColumnTransformer(tbl)

		out, err := ct.FitTransform(tbl)
		require.NoError(t, err)

		rows, cols := out.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, []string{"age", "city=a", "city=b"}, ct.FeatureNames())

		// Numeric block: mean 0, unit population variance on the fit set.
		s := math.Sqrt(2.0 / 3.0)
		assert.InDelta(t, (1-2.0)/s, out.At(0, 0), 1e-12)
		assert.InDelta(t, 0, out.At(1, 0), 1e-12)
		assert.InDelta(t, (3-2.0)/s, out.At(2, 0), 1e-12)

		// Indicator block: a, b, a.
		assert.Equal(t, []float64{1, 0}, out.Row(0)[1:])
		assert.Equal(t, []float64{0, 1}, out.Row(1)[1:])
		assert.Equal(t, []float64{1, 0}, out.Row(2)[1:])
	})

	t.Run("unseen category encodes to zeros", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))

		fresh, err := frame.New(
			frame.NewNumeric("age", []float64{2}),
			frame.NewText("city", []string{"z"}),
		)
		require.NoError(t, err)

		out, err := ct.Transform(fresh)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0}, out.Row(0))
	})

	t.Run("missing numeric column becomes nan", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))

		fresh, err := frame.New(frame.NewText("city", []string{"b"}))
		require.NoError(t, err)

		out, err := ct.Transform(fresh)
		require.NoError(t, err)

		_, cols := out.Dims()
		assert.Equal(t, 3, cols)
		assert.True(t, math.IsNaN(out.At(0, 0)))
		assert.Equal(t, []float64{0, 1}, out.Row(0)[1:])
	})

	t.Run("missing categorical column becomes zero block", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))

		fresh, err := frame.New(frame.NewNumeric("age", []float64{2}))
		require.NoError(t, err)

		out, err := ct.Transform(fresh)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0}, out.Row(0))
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))

		fresh, err := frame.New(
			frame.NewNumeric("age", []float64{2}),
			frame.NewText("city", []string{"a"}),
			frame.NewNumeric("extra", []float64{99}),
		)
		require.NoError(t, err)

		out, err := ct.Transform(fresh)
		require.NoError(t, err)
		_, cols := out.Dims()
		assert.Equal(t, 3, cols)
	})

	t.Run("renamed numeric column treated as missing", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))

		fresh, err := frame.New(
			frame.NewText("age", []string{"1"}),
			frame.NewText("city", []string{"a"}),
		)
		require.NoError(t, err)

		out, err := ct.Transform(fresh)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(out.At(0, 0)))
	})

	t.Run("zero row table", func(t *testing.T) {
		t.Parallel()
		tbl, err := frame.New(
			frame.NewNumeric("age", nil),
			frame.NewText("city", nil),
		)
		require.NoError(t, err)

		ct := preprocess.NewColumnTransformer(tbl)
		out, err := ct.FitTransform(tbl)
		require.NoError(t, err)

		rows, cols := out.Dims()
		assert.Equal(t, 0, rows)
		assert.Equal(t, 1, cols) // empty vocabulary, numeric branch only
		assert.Equal(t, []string{"age"}, ct.FeatureNames())
	})

	t.Run("numeric only table", func(t *testing.T) {
		t.Parallel()
		tbl, err := frame.New(frame.NewNumeric("x", []float64{1, 3}))
		require.NoError(t, err)

		ct := preprocess.NewColumnTransformer(tbl)
		out, err := ct.FitTransform(tbl)
		require.NoError(t, err)

		assert.InDelta(t, -1, out.At(0, 0), 1e-12)
		assert.InDelta(t, 1, out.At(1, 0), 1e-12)
	})

	t.Run("categorical only table", func(t *testing.T) {
		t.Parallel()
		tbl, err := frame.New(frame.NewText("c", []string{"b", "a"}))
		require.NoError(t, err)

		ct := preprocess.NewColumnTransformer(tbl)
		out, err := ct.FitTransform(tbl)
		require.NoError(t, err)

		// Categories are sorted, so the "a" indicator comes first.
		assert.Equal(t, []string{"c=a", "c=b"}, ct.FeatureNames())
		assert.Equal(t, []float64{0, 1}, out.Row(0))
		assert.Equal(t, []float64{1, 0}, out.Row(1))
	})

	t.Run("does not mutate the input table", func(t *testing.T) {
		t.Parallel()
		tbl := mixedTable(t)
		ct := preprocess.NewColumnTransformer(tbl)

		_, err := ct.FitTransform(tbl)
		require.NoError(t, err)

		col, ok := tbl.ColumnByName("age")
		require.True(t, ok)
		assert.Equal(t, []float64{1, 2, 3}, col.(*frame.NumericColumn).Values())
	})
}

func TestColumnTransformerFeatureNames(t *testing.T) {
	t.Parallel()

	t.Run("before fit lists numeric branch only", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		assert.Equal(t, []string{"age"}, ct.FeatureNames())
	})

	t.Run("after fit includes indicator labels", func(t *testing.T) {
		t.Parallel()
		ct := preprocess.NewColumnTransformer(mixedTable(t))
		require.NoError(t, ct.Fit(mixedTable(t)))
		assert.Equal(t, []string{"age", "city=a", "city=b"}, ct.FeatureNames())
	})
}
