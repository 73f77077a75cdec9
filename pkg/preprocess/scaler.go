package preprocess

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers and scales matrix columns to zero mean and unit
// variance using statistics learned at fit time. Statistics are computed
// over finite values only; a zero or undefined standard deviation is
// replaced with 1, so constant columns scale to zero instead of dividing
// by zero.
type StandardScaler struct {
	means  []float64
	stds   []float64
	fitted bool
}

// NewStandardScaler returns an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit learns the per-column mean and population standard deviation of x.
// Fitting is one-shot; a second call returns ErrAlreadyFitted.
func (s *StandardScaler) Fit(x *Matrix) error {
	if s.fitted {
		return ErrAlreadyFitted
	}
	_, cols := x.Dims()
	s.means = make([]float64, cols)
	s.stds = make([]float64, cols)
	for j := 0; j < cols; j++ {
		s.means[j], s.stds[j] = columnStats(x.Col(j))
	}
	s.fitted = true
	return nil
}

// Transform applies (x - mean) / std to every column. NaN cells propagate.
func (s *StandardScaler) Transform(x *Matrix) (*Matrix, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	rows, cols := x.Dims()
	if cols != len(s.means) {
		return nil, errors.Join(ErrDimensionMismatch,
			fmt.Errorf("have %d columns, fitted on %d", cols, len(s.means)))
	}
	out := zeros(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.set(i, j, (x.At(i, j)-s.means[j])/s.stds[j])
		}
	}
	return out, nil
}

// FitTransform fits on x and returns its transform.
func (s *StandardScaler) FitTransform(x *Matrix) (*Matrix, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

// Fitted reports whether Fit has completed.
func (s *StandardScaler) Fitted() bool {
	return s.fitted
}

// Means returns a copy of the fitted means.
func (s *StandardScaler) Means() []float64 {
	return append([]float64(nil), s.means...)
}

// Stds returns a copy of the fitted standard deviations.
func (s *StandardScaler) Stds() []float64 {
	return append([]float64(nil), s.stds...)
}

// columnStats returns the mean and population standard deviation of the
// finite values in col. No finite values yields mean 0 and std 1.
func columnStats(col []float64) (mean, std float64) {
	finite := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 1
	}
	mean = stat.Mean(finite, nil)
	std = stat.PopStdDev(finite, nil)
	if std == 0 || math.IsNaN(std) {
		std = 1
	}
	return mean, std
}
