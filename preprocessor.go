package prepkit

import (
	"github.com/prepkit/prepkit/pkg/cleaner"
	"github.com/prepkit/prepkit/pkg/frame"
	"github.com/prepkit/prepkit/pkg/preprocess"
)

// Preprocessor bundles cleaning and feature assembly into one fit/transform
// unit. Fit cleans the raw table, classifies the cleaned columns and learns
// the transformer state; Transform cleans incoming tables the same way
// before producing their feature matrix. Classification happens on the
// cleaned table, so header renames and kind resolution are already in
// effect when columns are assigned to branches.
type Preprocessor struct {
	cleanOpts   []cleaner.Option
	tfOpts      []preprocess.Option
	transformer *preprocess.ColumnTransformer
}

// NewPreprocessor returns an unfitted preprocessor.
func NewPreprocessor(opts ...Option) *Preprocessor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Preprocessor{
		cleanOpts: cfg.cleanerOptions(),
		tfOpts:    cfg.transformerOptions(),
	}
}

// Fit cleans raw and learns the feature assembly from the result. Fitting
// is one-shot; a second call returns preprocess.ErrAlreadyFitted.
func (p *Preprocessor) Fit(raw *frame.Table) error {
	if p.transformer != nil {
		return preprocess.ErrAlreadyFitted
	}
	cleaned := cleaner.Clean(raw, p.cleanOpts...)
	ct := preprocess.NewColumnTransformer(cleaned, p.tfOpts...)
	if err := ct.Fit(cleaned); err != nil {
		return err
	}
	p.transformer = ct
	return nil
}

// Transform cleans raw with the fit-time options and produces its feature
// matrix. Returns preprocess.ErrNotFitted before a successful Fit.
func (p *Preprocessor) Transform(raw *frame.Table) (*preprocess.Matrix, error) {
	if p.transformer == nil {
		return nil, preprocess.ErrNotFitted
	}
	return p.transformer.Transform(cleaner.Clean(raw, p.cleanOpts...))
}

// FitTransform fits on raw and returns its feature matrix.
func (p *Preprocessor) FitTransform(raw *frame.Table) (*preprocess.Matrix, error) {
	if p.transformer != nil {
		return nil, preprocess.ErrAlreadyFitted
	}
	cleaned := cleaner.Clean(raw, p.cleanOpts...)
	ct := preprocess.NewColumnTransformer(cleaned, p.tfOpts...)
	out, err := ct.FitTransform(cleaned)
	if err != nil {
		return nil, err
	}
	p.transformer = ct
	return out, nil
}

// Fitted reports whether Fit has completed.
func (p *Preprocessor) Fitted() bool {
	return p.transformer != nil
}

// FeatureNames returns the output column labels of the fitted transformer,
// nil before Fit.
func (p *Preprocessor) FeatureNames() []string {
	if p.transformer == nil {
		return nil
	}
	return p.transformer.FeatureNames()
}

// Transformer exposes the underlying fitted transformer, nil before Fit.
// Useful for state export via its EncodeState method.
func (p *Preprocessor) Transformer() *preprocess.ColumnTransformer {
	return p.transformer
}
