// Package prepkit prepares messy tabular data for machine-learning
// pipelines: it cleans tables of typed columns and assembles them into
// dense numeric feature matrices through a fit/transform lifecycle.
//
// The module is a library, not a service. It performs no I/O and trains no
// models; callers own data loading, model fitting and persistence. Three
// packages do the work:
//
//   - pkg/frame – the typed-column Table (numeric, text and unresolved
//     columns) everything else operates on.
//
//   - pkg/cleaner – type normalization, header deduplication and the cell
//     policy that strips stray quotes, detects numeric-looking text and
//     coerces it to numbers with parse failures degrading to missing.
//
//   - pkg/preprocess – the two-branch ColumnTransformer: standardized
//     numeric block plus one-hot indicator blocks, concatenated into a
//     dense matrix that interoperates with gonum.
//
// This root package composes them. Clean and BuildPipeline expose the two
// stages separately; Preprocessor bundles them so raw tables go in and
// feature matrices come out:
//
//	p := prepkit.NewPreprocessor()
//	if err := p.Fit(rawTable); err != nil { ... }
//	features, err := p.Transform(otherRawTable)
//
// Cleaning never fails: malformed cells degrade to text or missing values.
// The fit/transform lifecycle is strict: transforming before a successful
// fit returns preprocess.ErrNotFitted, and fitting twice returns
// preprocess.ErrAlreadyFitted.
//
// Defaults can come from the environment (PREPKIT_* variables) via
// LoadConfig and NewPreprocessorFromConfig.
package prepkit
