// Package cleaner turns messy tabular data into tables with resolved
// column kinds, unique headers and consistently parsed cells.
//
// Cleaning runs in three phases:
//
//   - Type normalization – every unresolved (mixed) column is rewritten as
//     a text column, so the cell phase sees one uniform kind.
//
//   - Header phase – column names lose stray single quotes and surrounding
//     whitespace, then duplicates are renamed {base}_{n} in order of
//     appearance so all names end up pairwise distinct.
//
//   - Cell phase – every text cell is stripped of stray quotes and
//     whitespace, tested against an explicit numeric-looking pattern
//     (digits, periods, commas, whitespace, full match) and, with coercion
//     enabled, parsed into a number using the decimal-comma convention.
//     A cell that looks numeric but fails to parse becomes missing, e.g.
//     "1,2,3". Cells that never looked numeric keep their stripped text.
//
// After the cell phase each column collapses to its resolved kind: all
// numeric-or-missing cells make a numeric column, anything else stays text.
//
// Cleaning never returns an error. Data problems degrade to text or missing
// cells; the input table is never modified. The same table cleaned twice is
// unchanged the second time.
//
// # Usage
//
//	import "github.com/prepkit/prepkit/pkg/cleaner"
//
//	cleaned := cleaner.Clean(raw)
//	cleaned = cleaner.Clean(raw, cleaner.WithoutCoercion())
//
//	cleaned, report := cleaner.CleanWithReport(raw,
//	    cleaner.WithLogger(slog.Default()),
//	)
//	fmt.Println(report.CoercedCells)
//
// The individual policies are exported for direct use and testing:
// CleanHeaders, CleanCell, IsNumericLooking and ParseNumeric.
package cleaner
