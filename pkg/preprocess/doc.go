// Package preprocess turns cleaned tables into dense numeric feature
// matrices through a fit/transform lifecycle.
//
// The central type is the ColumnTransformer, a two-branch assembler built
// from a cleaned table: numeric columns feed a StandardScaler (zero mean,
// unit variance on the fit set), every other column feeds a OneHotEncoder
// (one sorted vocabulary per column, unseen categories and missing cells
// encoding to all-zero blocks). Transform output is the horizontal
// concatenation [scaled numerics | indicators] as a Matrix.
//
//	ct := preprocess.NewColumnTransformer(cleaned)
//	if err := ct.Fit(cleaned); err != nil { ... }
//	features, err := ct.Transform(cleaned)
//
// The lifecycle is strict: Transform before Fit returns ErrNotFitted and a
// second Fit returns ErrAlreadyFitted. Both branch transformers are also
// exported on their own with the same Fit/Transform/FitTransform surface.
//
// Matrix is dense, row-major float64 and implements gonum's mat.Matrix, so
// results feed directly into gonum operations; Dense() converts to a
// *mat.Dense where the shape allows it. Unlike mat.Dense, a Matrix may
// have zero rows or zero columns, which is what transforming an empty
// table produces.
//
// A fitted transformer can round-trip through YAML with EncodeState and
// DecodeState; where the bytes are stored is the caller's business.
package preprocess
