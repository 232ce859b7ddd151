// Package matrix: converters to and from gonum's dense matrices, for callers
// that want to push a matchmax matrix through linear-algebra routines (or
// pull one back out).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum exports the matrix as a freshly allocated *mat.Dense with the same
// shape; cell values are widened to float64. The result shares no storage
// with the receiver.
//
// Complexity: O(width·height).
func (m *Matrix) ToGonum() *mat.Dense {
	data := make([]float64, len(m.cells))
	for i, v := range m.cells {
		data[i] = float64(v)
	}

	return mat.NewDense(m.height, m.width, data)
}

// FromGonum imports a gonum matrix into a new *Matrix. Every source value
// must be an exact integer representable as int; anything else (fractions,
// NaN, ±Inf, out-of-range magnitudes) fails the whole import.
//
// Errors:
//   - ErrInvalidDimensions — src has zero rows or columns.
//   - ErrNonInteger        — a value is fractional, non-finite, or overflows int.
//
// Complexity: O(rows·cols).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	rows, cols := src.Dims()

	out, err := New(cols, rows, opts...)
	if err != nil {
		return nil, err
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := src.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v ||
				v > float64(math.MaxInt) || v < float64(math.MinInt) {
				return nil, fmt.Errorf("matrix: FromGonum at (%d,%d) value %v: %w", r, c, v, ErrNonInteger)
			}
			out.cells[r*cols+c] = int(v)
		}
	}

	return out, nil
}
