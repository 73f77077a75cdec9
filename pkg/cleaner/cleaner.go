package cleaner

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/prepkit/prepkit/pkg/frame"
)

// Report summarizes what a cleaning run changed.
type Report struct {
	RenamedColumns int // headers changed by stripping or deduplication
	CoercedCells   int // text cells that ended up numeric in the cleaned table
	MissingCells   int // numeric-looking cells that failed to parse
	NumericColumns int // numeric columns in the cleaned table
	TextColumns    int // text columns in the cleaned table
}

// NormalizeTypes rewrites every unresolved column as a text column so the
// cell phase sees one uniform kind. Numbers are formatted with the shortest
// representation that round-trips; typed columns pass through as-is.
func NormalizeTypes(t *frame.Table) *frame.Table {
	return t.MapColumns(func(_ int, c frame.Column) frame.Column {
		anyCol, ok := c.(*frame.AnyColumn)
		if !ok {
			return c
		}
		return anyCol.AsText()
	})
}

// Clean returns a cleaned copy of t: normalized column kinds, stripped and
// deduplicated headers, and the cell policy applied to every text cell with
// numeric coercion on by default. Cleaning never fails; malformed data
// degrades to text or missing cells.
func Clean(t *frame.Table, opts ...Option) *frame.Table {
	out, _ := CleanWithReport(t, opts...)
	return out
}

// CleanWithReport is Clean plus a summary of what changed.
func CleanWithReport(t *frame.Table, opts ...Option) (*frame.Table, Report) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report

	normalized := NormalizeTypes(t)

	before := normalized.ColumnNames()
	names := CleanHeaders(before)
	for i, n := range names {
		if n != before[i] {
			rep.RenamedColumns++
		}
	}

	out := normalized.MapColumns(func(i int, c frame.Column) frame.Column {
		return cleanColumn(c, cfg, &rep).Rename(names[i])
	})

	for i := 0; i < out.Width(); i++ {
		switch out.Column(i).Kind() {
		case frame.KindNumeric:
			rep.NumericColumns++
		case frame.KindText:
			rep.TextColumns++
		}
	}

	cfg.logger.Debug("table cleaned",
		slog.Int("rows", out.Height()),
		slog.Int("columns", out.Width()),
		slog.Int("renamed_columns", rep.RenamedColumns),
		slog.Int("coerced_cells", rep.CoercedCells),
		slog.Int("missing_cells", rep.MissingCells),
		slog.Int("numeric_columns", rep.NumericColumns),
		slog.Int("text_columns", rep.TextColumns))

	return out, rep
}

// cleanColumn applies the cell policy to one column. Numeric columns pass
// through; text and mixed columns get their cells cleaned and the result
// collapsed to its resolved kind. Coerced cells only count toward the
// report when their column resolves numeric; in a column that stays
// textual they are formatted back to text.
func cleanColumn(c frame.Column, cfg config, rep *Report) frame.Column {
	var cells []frame.Cell
	switch col := c.(type) {
	case *frame.NumericColumn:
		return col
	case *frame.TextColumn:
		cells = make([]frame.Cell, col.Len())
		for i := 0; i < col.Len(); i++ {
			cells[i] = col.Cell(i)
		}
	case *frame.AnyColumn:
		// Clean runs NormalizeTypes first, so this arm only serves callers
		// feeding unnormalized tables directly.
		cells = col.Cells()
	default:
		return c
	}

	coerced, missed := 0, 0
	for i, cell := range cells {
		wasText := cell.Kind() == frame.CellText
		out := cleanCell(cell, cfg)
		if wasText {
			if out.Kind() == frame.CellNumber {
				coerced++
			} else if out.IsMissing() {
				missed++
			}
		}
		cells[i] = out
	}

	resolved := frame.NewAny(c.Name(), cells).Resolve()
	if resolved.Kind() == frame.KindNumeric {
		rep.CoercedCells += coerced
	}
	rep.MissingCells += missed
	return resolved
}

func cleanCell(cell frame.Cell, cfg config) frame.Cell {
	if cfg.normalize {
		if s, ok := cell.Text(); ok {
			cell = frame.Str(norm.NFC.String(s))
		}
	}
	return CleanCell(cell, cfg.coerce)
}
