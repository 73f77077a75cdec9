package frame

import "math"

// Kind classifies the element kind of a column.
type Kind int

const (
	// KindAny marks a column whose element kind is not resolved yet. Raw
	// ingested data starts here; cleaning resolves it to one of the typed
	// kinds.
	KindAny Kind = iota
	// KindNumeric marks a column of float64 values, NaN for missing cells.
	KindNumeric
	// KindText marks a column of strings with an explicit missing mask.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "any"
	}
}

// Column is a named, typed vector of values. Exactly three implementations
// exist: NumericColumn, TextColumn and AnyColumn. The interface is sealed,
// so a type switch over these three is exhaustive. Columns are immutable
// once built; every transforming method returns a new column.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	// Cell returns the value at row i in tagged form.
	Cell(i int) Cell
	// Rename returns a copy of the column under a new name.
	Rename(name string) Column
	// Clone returns an independent deep copy.
	Clone() Column

	sealedColumn()
}

// NumericColumn holds float64 values. NaN marks a missing cell.
type NumericColumn struct {
	name   string
	values []float64
}

// NewNumeric builds a numeric column over a copy of values.
func NewNumeric(name string, values []float64) *NumericColumn {
	return &NumericColumn{name: name, values: append([]float64(nil), values...)}
}

func (c *NumericColumn) Name() string { return c.name }
func (c *NumericColumn) Kind() Kind   { return KindNumeric }
func (c *NumericColumn) Len() int     { return len(c.values) }

func (c *NumericColumn) Cell(i int) Cell {
	return Num(c.values[i])
}

// Values returns a copy of the underlying data. Missing cells are NaN.
func (c *NumericColumn) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// IsMissing reports whether row i holds no value.
func (c *NumericColumn) IsMissing(i int) bool {
	return math.IsNaN(c.values[i])
}

// Map returns a copy with fn applied to every non-missing value.
func (c *NumericColumn) Map(fn func(float64) float64) *NumericColumn {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		out[i] = fn(v)
	}
	return &NumericColumn{name: c.name, values: out}
}

func (c *NumericColumn) Rename(name string) Column {
	return &NumericColumn{name: name, values: append([]float64(nil), c.values...)}
}

func (c *NumericColumn) Clone() Column { return c.Rename(c.name) }

func (c *NumericColumn) sealedColumn() {}

// TextColumn holds string values plus a missing mask. The empty string is a
// legal value, distinct from a missing cell.
type TextColumn struct {
	name    string
	values  []string
	missing []bool
}

// NewText builds a text column with no missing cells.
func NewText(name string, values []string) *TextColumn {
	return &TextColumn{
		name:    name,
		values:  append([]string(nil), values...),
		missing: make([]bool, len(values)),
	}
}

// NewTextWithMissing builds a text column with an explicit missing mask.
// A nil mask means no missing cells; otherwise the mask must be as long as
// values. Masked entries are stored as empty strings.
func NewTextWithMissing(name string, values []string, missing []bool) *TextColumn {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	if len(missing) != len(values) {
		panic("frame: missing mask and values must have equal length")
	}
	vals := append([]string(nil), values...)
	mask := append([]bool(nil), missing...)
	for i, m := range mask {
		if m {
			vals[i] = ""
		}
	}
	return &TextColumn{name: name, values: vals, missing: mask}
}

func (c *TextColumn) Name() string { return c.name }
func (c *TextColumn) Kind() Kind   { return KindText }
func (c *TextColumn) Len() int     { return len(c.values) }

func (c *TextColumn) Cell(i int) Cell {
	if c.missing[i] {
		return Missing()
	}
	return Str(c.values[i])
}

// Values returns a copy of the underlying strings. Missing cells appear as
// empty strings; use IsMissing to tell them apart from real empties.
func (c *TextColumn) Values() []string {
	return append([]string(nil), c.values...)
}

// IsMissing reports whether row i holds no value.
func (c *TextColumn) IsMissing(i int) bool {
	return c.missing[i]
}

// Map returns a copy with fn applied to every non-missing value.
func (c *TextColumn) Map(fn func(string) string) *TextColumn {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		if c.missing[i] {
			continue
		}
		out[i] = fn(v)
	}
	return &TextColumn{name: c.name, values: out, missing: append([]bool(nil), c.missing...)}
}

func (c *TextColumn) Rename(name string) Column {
	return &TextColumn{
		name:    name,
		values:  append([]string(nil), c.values...),
		missing: append([]bool(nil), c.missing...),
	}
}

func (c *TextColumn) Clone() Column { return c.Rename(c.name) }

func (c *TextColumn) sealedColumn() {}

// AnyColumn holds heterogeneous cells. It is the ingestion form for data
// whose element kind is not known up front.
type AnyColumn struct {
	name  string
	cells []Cell
}

// NewAny builds a mixed column over a copy of cells.
func NewAny(name string, cells []Cell) *AnyColumn {
	return &AnyColumn{name: name, cells: append([]Cell(nil), cells...)}
}

func (c *AnyColumn) Name() string { return c.name }
func (c *AnyColumn) Kind() Kind   { return KindAny }
func (c *AnyColumn) Len() int     { return len(c.cells) }

func (c *AnyColumn) Cell(i int) Cell {
	return c.cells[i]
}

// Cells returns a copy of the underlying cells.
func (c *AnyColumn) Cells() []Cell {
	return append([]Cell(nil), c.cells...)
}

// IsMissing reports whether row i holds no value.
func (c *AnyColumn) IsMissing(i int) bool {
	return c.cells[i].IsMissing()
}

// Map returns a copy with fn applied to every cell, missing ones included.
func (c *AnyColumn) Map(fn func(Cell) Cell) *AnyColumn {
	out := make([]Cell, len(c.cells))
	for i, cell := range c.cells {
		out[i] = fn(cell)
	}
	return &AnyColumn{name: c.name, cells: out}
}

// AsText returns the column with every value in textual form: numbers use
// the shortest representation that round-trips, text passes through and
// missing cells stay missing.
func (c *AnyColumn) AsText() *TextColumn {
	values := make([]string, len(c.cells))
	missing := make([]bool, len(c.cells))
	for i, cell := range c.cells {
		if cell.IsMissing() {
			missing[i] = true
			continue
		}
		values[i] = cell.String()
	}
	return &TextColumn{name: c.name, values: values, missing: missing}
}

// Resolve collapses the column to a typed one. A column whose cells are all
// numeric or missing becomes a NumericColumn with NaN for the missing
// cells; any remaining text cell keeps the column textual, with numeric
// cells formatted back to their shortest string form.
func (c *AnyColumn) Resolve() Column {
	numericOnly := true
	for _, cell := range c.cells {
		if cell.Kind() == CellText {
			numericOnly = false
			break
		}
	}
	if numericOnly {
		values := make([]float64, len(c.cells))
		for i, cell := range c.cells {
			v, ok := cell.Float64()
			if !ok {
				v = math.NaN()
			}
			values[i] = v
		}
		return &NumericColumn{name: c.name, values: values}
	}
	return c.AsText()
}

func (c *AnyColumn) Rename(name string) Column {
	return &AnyColumn{name: name, cells: append([]Cell(nil), c.cells...)}
}

func (c *AnyColumn) Clone() Column { return c.Rename(c.name) }

func (c *AnyColumn) sealedColumn() {}
