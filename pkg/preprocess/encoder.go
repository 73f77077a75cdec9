package preprocess

import (
	"errors"
	"fmt"
	"sort"

	"github.com/prepkit/prepkit/pkg/frame"
)

// OneHotEncoder maps categorical columns onto indicator blocks. One sorted
// vocabulary per column is learned at fit time; at transform time every
// cell sets the indicator of its category, while unseen categories and
// missing cells leave their block all zero rather than failing.
type OneHotEncoder struct {
	categories [][]string
	index      []map[string]int
	fitted     bool
}

// NewOneHotEncoder returns an unfitted encoder.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// Fit learns one lexicographically sorted vocabulary per column. Missing
// cells contribute nothing; numeric cells inside mixed columns count as
// their shortest string form. Fitting is one-shot; a second call returns
// ErrAlreadyFitted.
func (e *OneHotEncoder) Fit(cols []frame.Column) error {
	if e.fitted {
		return ErrAlreadyFitted
	}
	e.categories = make([][]string, len(cols))
	e.index = make([]map[string]int, len(cols))
	for ci, col := range cols {
		set := make(map[string]struct{})
		for i := 0; i < col.Len(); i++ {
			if s, ok := cellCategory(col.Cell(i)); ok {
				set[s] = struct{}{}
			}
		}
		cats := make([]string, 0, len(set))
		for s := range set {
			cats = append(cats, s)
		}
		sort.Strings(cats)
		index := make(map[string]int, len(cats))
		for i, s := range cats {
			index[s] = i
		}
		e.categories[ci] = cats
		e.index[ci] = index
	}
	e.fitted = true
	return nil
}

// Transform encodes cols, which must match the fitted column count, into
// one indicator block per column, concatenated left to right.
func (e *OneHotEncoder) Transform(cols []frame.Column) (*Matrix, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if len(cols) != len(e.categories) {
		return nil, errors.Join(ErrDimensionMismatch,
			fmt.Errorf("have %d columns, fitted on %d", len(cols), len(e.categories)))
	}
	rows := 0
	for i, col := range cols {
		if i == 0 {
			rows = col.Len()
			continue
		}
		if col.Len() != rows {
			return nil, errors.Join(ErrDimensionMismatch,
				fmt.Errorf("column %q has %d rows, want %d", col.Name(), col.Len(), rows))
		}
	}

	out := zeros(rows, e.Width())
	offset := 0
	for ci, col := range cols {
		index := e.index[ci]
		for i := 0; i < col.Len(); i++ {
			if s, ok := cellCategory(col.Cell(i)); ok {
				if j, known := index[s]; known {
					out.set(i, offset+j, 1)
				}
			}
		}
		offset += len(e.categories[ci])
	}
	return out, nil
}

// FitTransform fits on cols and returns their encoding.
func (e *OneHotEncoder) FitTransform(cols []frame.Column) (*Matrix, error) {
	if err := e.Fit(cols); err != nil {
		return nil, err
	}
	return e.Transform(cols)
}

// Fitted reports whether Fit has completed.
func (e *OneHotEncoder) Fitted() bool {
	return e.fitted
}

// Width returns the total indicator width across fitted columns.
func (e *OneHotEncoder) Width() int {
	total := 0
	for _, cats := range e.categories {
		total += len(cats)
	}
	return total
}

// Categories returns a copy of the fitted vocabularies in column order.
func (e *OneHotEncoder) Categories() [][]string {
	out := make([][]string, len(e.categories))
	for i, cats := range e.categories {
		out[i] = append([]string(nil), cats...)
	}
	return out
}

// cellCategory maps a cell to its category string. Missing cells have no
// category.
func cellCategory(c frame.Cell) (string, bool) {
	if c.IsMissing() {
		return "", false
	}
	return c.String(), true
}
