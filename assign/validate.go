// Package assign: shared validation and private access helpers.
// Deterministic, side-effect free; only sentinel errors from errors.go.

package assign

import (
	"fmt"

	"github.com/katalvlaran/matchmax/matrix"
)

// validateMatrix checks the common solver preconditions: non-nil input with
// positive dimensions. Solvers call it before any allocation.
//
// Complexity: O(1).
func validateMatrix(m *matrix.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Width() <= 0 || m.Height() <= 0 {
		return ErrInvalidMatrix
	}

	return nil
}

// mustAt reads (row, col) from a matrix whose bounds the caller has already
// established. An error here is a programmer error (loop bound bug), so it
// panics rather than forcing error plumbing through every inner loop.
func mustAt(m *matrix.Matrix, row, col int) int {
	v, err := m.At(row, col)
	if err != nil {
		panic(fmt.Sprintf("assign: internal bounds violation: %v", err))
	}

	return v
}

// mustSet writes (row, col) under the same contract as mustAt.
func mustSet(m *matrix.Matrix, row, col, v int) {
	if err := m.Set(row, col, v); err != nil {
		panic(fmt.Sprintf("assign: internal bounds violation: %v", err))
	}
}
