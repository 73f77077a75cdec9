package frame

import (
	"math"
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	CellMissing CellKind = iota
	CellNumber
	CellText
)

// Cell is a single tagged value inside a mixed column: a number, a piece of
// text, or nothing at all.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Num returns a numeric cell. NaN collapses to a missing cell so a column
// never carries two representations of absence.
func Num(v float64) Cell {
	if math.IsNaN(v) {
		return Cell{kind: CellMissing}
	}
	return Cell{kind: CellNumber, num: v}
}

// Str returns a text cell. The empty string is a legal value, not missing.
func Str(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// Missing returns the cell that marks an absent value.
func Missing() Cell {
	return Cell{kind: CellMissing}
}

// Kind reports which variant the cell holds.
func (c Cell) Kind() CellKind { return c.kind }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.kind == CellMissing }

// Float64 returns the numeric value and whether the cell is numeric.
func (c Cell) Float64() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.num, true
}

// Text returns the text value and whether the cell is textual.
func (c Cell) Text() (string, bool) {
	if c.kind != CellText {
		return "", false
	}
	return c.text, true
}

// String renders the cell for display. Numbers use the shortest
// representation that round-trips; missing cells render as "<na>".
func (c Cell) String() string {
	switch c.kind {
	case CellNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case CellText:
		return c.text
	default:
		return "<na>"
	}
}
