// Package frame provides the typed-column table the rest of the module
// operates on.
//
// A Table is an ordered collection of equal-length columns. Columns come in
// exactly three kinds:
//
//   - NumericColumn – float64 values, NaN marking a missing cell.
//
//   - TextColumn – string values with an explicit missing mask, so the empty
//     string stays a legal value.
//
//   - AnyColumn – heterogeneous tagged cells (number, text or missing), the
//     ingestion form for data whose element kind is not known up front.
//
// The Column interface is sealed over these three, which keeps type switches
// exhaustive and moves per-cell type inspection out of the hot paths:
// transformations work on whole typed columns via their Map methods, and an
// AnyColumn is collapsed to a typed column once via Resolve.
//
// Columns and tables are immutable. Constructors copy their input slices,
// accessors return copies, and every transforming method (Map, Rename,
// MapColumns) builds a new value. Tables may therefore share columns freely
// and are safe for concurrent reads.
//
// # Usage
//
//	import "github.com/prepkit/prepkit/pkg/frame"
//
//	t, err := frame.New(
//	    frame.NewNumeric("age", []float64{31, 45, 27}),
//	    frame.NewText("city", []string{"Bogotá", "Lima", "Quito"}),
//	)
//	if err != nil {
//	    // columns disagreed on row count
//	}
//	fmt.Println(t) // light box-drawing preview with column kinds
//
// Duplicate column names are legal at this layer; the cleaner package is
// responsible for making them unique before downstream stages rely on
// name-based lookup.
package frame
