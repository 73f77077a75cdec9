package prepkit

import (
	"github.com/prepkit/prepkit/pkg/cleaner"
	"github.com/prepkit/prepkit/pkg/frame"
	"github.com/prepkit/prepkit/pkg/preprocess"
)

// Clean returns a cleaned copy of t: resolved column kinds, stripped and
// deduplicated headers, and the cell policy applied with numeric coercion
// on by default. Pass cleaner.WithoutCoercion to keep numeric-looking text
// as text.
func Clean(t *frame.Table, opts ...cleaner.Option) *frame.Table {
	return cleaner.Clean(t, opts...)
}

// BuildPipeline inspects the columns of an already-cleaned table and
// returns an unfitted two-branch transformer: numeric columns feed a
// standard scaler, all other columns a one-hot encoder. The transformer
// still has to be fitted before it can transform.
func BuildPipeline(t *frame.Table, opts ...preprocess.Option) *preprocess.ColumnTransformer {
	return preprocess.NewColumnTransformer(t, opts...)
}
