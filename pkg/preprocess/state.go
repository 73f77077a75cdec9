package preprocess

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// State is a serializable snapshot of a fitted ColumnTransformer. The
// caller owns where the bytes live; the package only encodes and decodes
// them.
type State struct {
	FitID       string     `yaml:"fit_id"`
	Numeric     []string   `yaml:"numeric_columns"`
	Categorical []string   `yaml:"categorical_columns"`
	Means       []float64  `yaml:"means"`
	Stds        []float64  `yaml:"stds"`
	Categories  [][]string `yaml:"categories"`
}

// EncodeState serializes a fitted transformer to YAML. Unfitted
// transformers have no state to encode and return ErrNotFitted.
func (ct *ColumnTransformer) EncodeState() ([]byte, error) {
	if !ct.fitted {
		return nil, ErrNotFitted
	}
	state := State{
		FitID:       ct.fitID.String(),
		Numeric:     ct.NumericColumns(),
		Categorical: ct.CategoricalColumns(),
		Means:       ct.scaler.Means(),
		Stds:        ct.scaler.Stds(),
		Categories:  ct.encoder.Categories(),
	}
	out, err := yaml.Marshal(state)
	if err != nil {
		return nil, errors.Join(ErrInvalidState, err)
	}
	return out, nil
}

// DecodeState rebuilds a fitted transformer from EncodeState output.
func DecodeState(data []byte, opts ...Option) (*ColumnTransformer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, errors.Join(ErrInvalidState, err)
	}
	if err := state.validate(); err != nil {
		return nil, err
	}

	fitID, err := uuid.Parse(state.FitID)
	if err != nil {
		return nil, errors.Join(ErrInvalidState, err)
	}

	index := make([]map[string]int, len(state.Categories))
	categories := make([][]string, len(state.Categories))
	for ci, cats := range state.Categories {
		categories[ci] = append([]string(nil), cats...)
		index[ci] = make(map[string]int, len(cats))
		for i, s := range cats {
			index[ci][s] = i
		}
	}

	return &ColumnTransformer{
		numeric:     append([]string(nil), state.Numeric...),
		categorical: append([]string(nil), state.Categorical...),
		scaler: &StandardScaler{
			means:  append([]float64(nil), state.Means...),
			stds:   append([]float64(nil), state.Stds...),
			fitted: true,
		},
		encoder: &OneHotEncoder{
			categories: categories,
			index:      index,
			fitted:     true,
		},
		fitted: true,
		fitID:  fitID,
		logger: cfg.logger,
	}, nil
}

func (s State) validate() error {
	if len(s.Means) != len(s.Numeric) || len(s.Stds) != len(s.Numeric) {
		return errors.Join(ErrInvalidState,
			fmt.Errorf("%d numeric columns with %d means and %d stds",
				len(s.Numeric), len(s.Means), len(s.Stds)))
	}
	if len(s.Categories) != len(s.Categorical) {
		return errors.Join(ErrInvalidState,
			fmt.Errorf("%d categorical columns with %d vocabularies",
				len(s.Categorical), len(s.Categories)))
	}
	for j, std := range s.Stds {
		if std == 0 {
			return errors.Join(ErrInvalidState,
				fmt.Errorf("zero standard deviation for column %q", s.Numeric[j]))
		}
	}
	return nil
}
