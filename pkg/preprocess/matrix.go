package preprocess

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major float64 matrix that allows zero rows and zero
// columns, shapes gonum's mat.Dense cannot represent. It implements
// mat.Matrix, so non-empty results plug directly into gonum operations.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a rows x cols matrix over a copy of data, which must
// hold exactly rows*cols values in row-major order. data may be nil when
// either dimension is zero.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Join(ErrDimensionMismatch,
			fmt.Errorf("negative dimensions %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		return nil, errors.Join(ErrDimensionMismatch,
			fmt.Errorf("have %d values, want %d", len(data), rows*cols))
	}
	return &Matrix{rows: rows, cols: cols, data: append([]float64(nil), data...)}, nil
}

// zeros returns a rows x cols matrix of zero values.
func zeros(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (int, int) {
	return m.rows, m.cols
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic("preprocess: matrix row index out of range")
	}
	if j < 0 || j >= m.cols {
		panic("preprocess: matrix column index out of range")
	}
	return m.data[i*m.cols+j]
}

// T returns the transpose view, satisfying mat.Matrix.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic("preprocess: matrix row index out of range")
	}
	return append([]float64(nil), m.data[i*m.cols:(i+1)*m.cols]...)
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic("preprocess: matrix column index out of range")
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Data returns a copy of the underlying row-major values.
func (m *Matrix) Data() []float64 {
	return append([]float64(nil), m.data...)
}

// Dense converts to a gonum *mat.Dense. Returns nil for zero-sized shapes,
// which gonum cannot represent.
func (m *Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	return mat.NewDense(m.rows, m.cols, append([]float64(nil), m.data...))
}

func (m *Matrix) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// hstack concatenates blocks horizontally into a rows-high matrix. Blocks
// narrower than their full height contribute nothing for the missing rows,
// so callers must pass blocks of exactly rows height or zero width.
func hstack(rows int, blocks ...*Matrix) *Matrix {
	total := 0
	for _, b := range blocks {
		total += b.cols
	}
	out := zeros(rows, total)
	offset := 0
	for _, b := range blocks {
		if b.cols == 0 {
			continue
		}
		for i := 0; i < min(rows, b.rows); i++ {
			copy(out.data[i*total+offset:i*total+offset+b.cols], b.data[i*b.cols:(i+1)*b.cols])
		}
		offset += b.cols
	}
	return out
}
