package preprocess

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/prepkit/prepkit/pkg/frame"
)

// ColumnTransformer is the two-branch feature assembler: numeric columns
// flow through a StandardScaler, all other columns through a OneHotEncoder,
// and the transform output is the horizontal concatenation of both blocks
// as a dense matrix.
//
// The lifecycle is fit once, transform many. Transform before Fit returns
// ErrNotFitted; a second Fit returns ErrAlreadyFitted.
type ColumnTransformer struct {
	numeric     []string
	categorical []string
	scaler      *StandardScaler
	encoder     *OneHotEncoder
	fitted      bool
	fitID       uuid.UUID
	logger      *slog.Logger
}

// NewColumnTransformer classifies the columns of t by kind and wires the
// two branches. The table is expected to be cleaned already: numeric
// columns feed the scaler branch and every other column, unresolved ones
// included, feeds the encoder branch, each branch keeping table order.
func NewColumnTransformer(t *frame.Table, opts ...Option) *ColumnTransformer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ct := &ColumnTransformer{
		scaler:  NewStandardScaler(),
		encoder: NewOneHotEncoder(),
		logger:  cfg.logger,
	}
	for i := 0; i < t.Width(); i++ {
		c := t.Column(i)
		if c.Kind() == frame.KindNumeric {
			ct.numeric = append(ct.numeric, c.Name())
		} else {
			ct.categorical = append(ct.categorical, c.Name())
		}
	}
	return ct
}

// Fit learns scaler statistics and encoder vocabularies from t. Columns
// are looked up by the names recorded at construction. Fitting is
// one-shot; a second call returns ErrAlreadyFitted.
func (ct *ColumnTransformer) Fit(t *frame.Table) error {
	if ct.fitted {
		return ErrAlreadyFitted
	}
	if err := ct.scaler.Fit(ct.numericMatrix(t)); err != nil {
		return err
	}
	if err := ct.encoder.Fit(ct.categoricalColumns(t)); err != nil {
		return err
	}
	ct.fitted = true
	ct.fitID = uuid.New()
	ct.logger.Debug("column transformer fitted",
		slog.String("fit_id", ct.fitID.String()),
		slog.Int("rows", t.Height()),
		slog.Int("numeric_columns", len(ct.numeric)),
		slog.Int("categorical_columns", len(ct.categorical)),
		slog.Int("feature_width", ct.width()))
	return nil
}

// Transform produces the feature matrix for t: the standardized numeric
// block, then the indicator blocks, concatenated in fit order. Output
// width equals len(FeatureNames()) regardless of which columns t actually
// carries; recorded columns absent from t contribute missing values (NaN
// through the scaler, zero indicators through the encoder).
func (ct *ColumnTransformer) Transform(t *frame.Table) (*Matrix, error) {
	if !ct.fitted {
		return nil, ErrNotFitted
	}
	numeric, err := ct.scaler.Transform(ct.numericMatrix(t))
	if err != nil {
		return nil, err
	}
	indicators, err := ct.encoder.Transform(ct.categoricalColumns(t))
	if err != nil {
		return nil, err
	}
	out := hstack(t.Height(), numeric, indicators)
	ct.logger.Debug("table transformed",
		slog.String("fit_id", ct.fitID.String()),
		slog.Int("rows", out.rows),
		slog.Int("features", out.cols))
	return out, nil
}

// FitTransform fits on t and returns its feature matrix.
func (ct *ColumnTransformer) FitTransform(t *frame.Table) (*Matrix, error) {
	if err := ct.Fit(t); err != nil {
		return nil, err
	}
	return ct.Transform(t)
}

// Fitted reports whether Fit has completed.
func (ct *ColumnTransformer) Fitted() bool {
	return ct.fitted
}

// FitID returns the identifier assigned when the transformer was fitted,
// uuid.Nil before that.
func (ct *ColumnTransformer) FitID() uuid.UUID {
	return ct.fitID
}

// NumericColumns returns the recorded numeric column names in branch order.
func (ct *ColumnTransformer) NumericColumns() []string {
	return append([]string(nil), ct.numeric...)
}

// CategoricalColumns returns the recorded categorical column names in
// branch order.
func (ct *ColumnTransformer) CategoricalColumns() []string {
	return append([]string(nil), ct.categorical...)
}

// FeatureNames returns the output column labels in matrix order: the
// numeric column names first, then one {column}={category} label per
// indicator. Indicator labels exist only after Fit.
func (ct *ColumnTransformer) FeatureNames() []string {
	names := make([]string, 0, ct.width())
	names = append(names, ct.numeric...)
	for ci, col := range ct.categorical {
		if ci >= len(ct.encoder.categories) {
			break
		}
		for _, cat := range ct.encoder.categories[ci] {
			names = append(names, col+"="+cat)
		}
	}
	return names
}

func (ct *ColumnTransformer) width() int {
	return len(ct.numeric) + ct.encoder.Width()
}

// numericMatrix assembles the scaler input: one column per recorded
// numeric name. Columns absent from t or no longer numeric contribute NaN
// cells.
func (ct *ColumnTransformer) numericMatrix(t *frame.Table) *Matrix {
	rows := t.Height()
	out := zeros(rows, len(ct.numeric))
	for j, name := range ct.numeric {
		values := numericValues(t, name)
		if values == nil {
			ct.logger.Debug("numeric column unavailable, treated as missing",
				slog.String("column", name))
			for i := 0; i < rows; i++ {
				out.set(i, j, math.NaN())
			}
			continue
		}
		for i := 0; i < rows; i++ {
			out.set(i, j, values[i])
		}
	}
	return out
}

// categoricalColumns assembles the encoder input: one column per recorded
// categorical name. Columns absent from t become all-missing placeholders,
// so their indicator blocks encode to zeros.
func (ct *ColumnTransformer) categoricalColumns(t *frame.Table) []frame.Column {
	cols := make([]frame.Column, 0, len(ct.categorical))
	for _, name := range ct.categorical {
		col, ok := t.ColumnByName(name)
		if !ok {
			ct.logger.Debug("categorical column unavailable, treated as missing",
				slog.String("column", name))
			cols = append(cols, missingColumn(name, t.Height()))
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// numericValues returns the values of the named numeric column, or nil
// when the column is absent or not numeric.
func numericValues(t *frame.Table, name string) []float64 {
	col, ok := t.ColumnByName(name)
	if !ok {
		return nil
	}
	nc, ok := col.(*frame.NumericColumn)
	if !ok {
		return nil
	}
	return nc.Values()
}

// missingColumn builds an all-missing stand-in for a column the input
// table no longer carries.
func missingColumn(name string, rows int) frame.Column {
	cells := make([]frame.Cell, rows)
	for i := range cells {
		cells[i] = frame.Missing()
	}
	return frame.NewAny(name, cells)
}
