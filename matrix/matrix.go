// Package matrix: the Matrix type and point-access operations.
// Matrix is a concrete, row-major container of int values, storing cells in
// a flat slice for O(1) access and cache friendliness.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a row-major width×height grid of int values.
// cells holds height*width elements; cell (r,c) lives at cells[r*width+c].
type Matrix struct {
	width  int   // number of columns
	height int   // number of rows
	def    int   // fill value used when new cells are materialized
	cells  []int // flat backing storage, length == width*height
}

// New creates a width×height Matrix with every cell set to the configured
// default value (zero unless WithDefaultValue is given).
//
// Errors:
//   - ErrInvalidDimensions — width <= 0 or height <= 0.
//   - ErrTooLarge          — width*height overflows the address space.
//
// Complexity: O(width·height) time and memory.
func New(width, height int, opts ...Option) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return nil, ErrTooLarge
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cells := make([]int, width*height)
	if cfg.defaultValue != 0 {
		for i := range cells {
			cells[i] = cfg.defaultValue
		}
	}

	return &Matrix{width: width, height: height, def: cfg.defaultValue, cells: cells}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows. Complexity: O(1).
func (m *Matrix) Height() int { return m.height }

// indexOf computes the flat offset of (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return 0, fmt.Errorf("matrix: %s(%d,%d) on %dx%d: %w", method, row, col, m.height, m.width, ErrOutOfRange)
	}

	return row*m.width + col, nil
}

// At retrieves the value at (row, col).
// Returns ErrOutOfRange if the position is outside [0,height)×[0,width).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.cells[idx], nil
}

// Set replaces the value at (row, col) with v.
// Returns ErrOutOfRange if the position is outside [0,height)×[0,width).
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.cells[idx] = v

	return nil
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the matrix. Complexity: O(width).
func (m *Matrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.height {
		return nil, fmt.Errorf("matrix: Row(%d) of %d: %w", i, m.height, ErrOutOfRange)
	}
	out := make([]int, m.width)
	copy(out, m.cells[i*m.width:(i+1)*m.width])

	return out, nil
}

// Column returns a copy of column j. Complexity: O(height).
func (m *Matrix) Column(j int) ([]int, error) {
	if j < 0 || j >= m.width {
		return nil, fmt.Errorf("matrix: Column(%d) of %d: %w", j, m.width, ErrOutOfRange)
	}
	out := make([]int, m.height)
	for r := 0; r < m.height; r++ {
		out[r] = m.cells[r*m.width+j]
	}

	return out, nil
}

// Clone returns a deep, fully independent copy of the matrix.
// This is the only sanctioned way to hand a solver a mutable working copy
// while keeping the caller's matrix untouched.
// Complexity: O(width·height).
func (m *Matrix) Clone() *Matrix {
	cells := make([]int, len(m.cells))
	copy(cells, m.cells)

	return &Matrix{width: m.width, height: m.height, def: m.def, cells: cells}
}

// Equal reports whether m and o have identical dimensions and cell values.
// It is content equivalence: construction defaults are not compared.
// Complexity: O(width·height).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i, v := range m.cells {
		if v != o.cells[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging, one bracketed row per line.
// Complexity: O(width·height).
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.height; r++ {
		b.WriteByte('[')
		for c := 0; c < m.width; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", m.cells[r*m.width+c])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
