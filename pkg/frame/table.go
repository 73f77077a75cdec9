package frame

import (
	"errors"
	"fmt"
	"slices"
)

// Table is an ordered collection of equal-length columns. Column names may
// repeat; cleaning is what makes them unique. A table never mutates: every
// transforming method returns a new table over the same immutable columns.
type Table struct {
	cols []Column
}

// New builds a table from columns. All columns must have the same length;
// zero columns and zero rows are both legal.
func New(cols ...Column) (*Table, error) {
	if len(cols) > 1 {
		height := cols[0].Len()
		for _, c := range cols[1:] {
			if c.Len() != height {
				return nil, errors.Join(ErrLengthMismatch,
					fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), height))
			}
		}
	}
	return &Table{cols: slices.Clone(cols)}, nil
}

// Height returns the number of rows.
func (t *Table) Height() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.cols)
}

// Column returns the column at position i.
func (t *Table) Column(i int) Column {
	return t.cols[i]
}

// ColumnByName returns the first column with the given name.
func (t *Table) ColumnByName(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// Columns returns all columns in table order.
func (t *Table) Columns() []Column {
	return slices.Clone(t.cols)
}

// ColumnsByKind returns the columns of the given kind in table order.
func (t *Table) ColumnsByKind(k Kind) []Column {
	var out []Column
	for _, c := range t.cols {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// MapColumns returns a new table with fn applied to every column. fn
// receives the column position and must preserve column length.
func (t *Table) MapColumns(fn func(i int, c Column) Column) *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = fn(i, c)
	}
	return &Table{cols: cols}
}

// Clone returns a table over the same immutable columns.
func (t *Table) Clone() *Table {
	return &Table{cols: slices.Clone(t.cols)}
}
