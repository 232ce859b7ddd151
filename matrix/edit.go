// Package matrix: structural editing — row/column insertion and deletion.
// These operations change logical dimensions and renumber the remaining
// cells; all of them validate before touching storage, so a failed edit
// leaves the matrix exactly as it was.

package matrix

import "fmt"

// InsertRow prepends values as the new row 0; every existing row shifts down
// by one index and height grows by one. Note the asymmetry with
// InsertColumn, which appends: callers that build a matrix line by line get
// the last-inserted row on top.
//
// Errors: ErrSizeMismatch if len(values) != Width().
// Complexity: O(width·height) — the backing slice is rebuilt.
func (m *Matrix) InsertRow(values []int) error {
	if len(values) != m.width {
		return fmt.Errorf("matrix: InsertRow got %d values, want %d: %w", len(values), m.width, ErrSizeMismatch)
	}

	cells := make([]int, len(m.cells)+m.width)
	copy(cells, values)
	copy(cells[m.width:], m.cells)

	m.cells = cells
	m.height++

	return nil
}

// InsertColumn appends values as the new highest column index; width grows
// by one and no existing cell is renumbered.
//
// Errors: ErrSizeMismatch if len(values) != Height().
// Complexity: O(width·height) — the backing slice is rebuilt with a new stride.
func (m *Matrix) InsertColumn(values []int) error {
	if len(values) != m.height {
		return fmt.Errorf("matrix: InsertColumn got %d values, want %d: %w", len(values), m.height, ErrSizeMismatch)
	}

	newWidth := m.width + 1
	cells := make([]int, newWidth*m.height)
	for r := 0; r < m.height; r++ {
		copy(cells[r*newWidth:], m.cells[r*m.width:(r+1)*m.width])
		cells[r*newWidth+m.width] = values[r]
	}

	m.cells = cells
	m.width = newWidth

	return nil
}

// DeleteRow removes row i; later rows shift up by one and height shrinks.
// Deleting the last remaining row leaves a degenerate 0-row matrix that New
// could not have produced; solvers reject such matrices up front.
//
// Errors: ErrOutOfRange if i is not in [0, Height()).
// Complexity: O(width·height).
func (m *Matrix) DeleteRow(i int) error {
	if i < 0 || i >= m.height {
		return fmt.Errorf("matrix: DeleteRow(%d) of %d: %w", i, m.height, ErrOutOfRange)
	}

	m.cells = append(m.cells[:i*m.width], m.cells[(i+1)*m.width:]...)
	m.height--

	return nil
}

// DeleteColumn removes column j; later columns shift left by one and width
// shrinks.
//
// Errors: ErrOutOfRange if j is not in [0, Width()).
// Complexity: O(width·height) — the backing slice is rebuilt with a new stride.
func (m *Matrix) DeleteColumn(j int) error {
	if j < 0 || j >= m.width {
		return fmt.Errorf("matrix: DeleteColumn(%d) of %d: %w", j, m.width, ErrOutOfRange)
	}

	newWidth := m.width - 1
	cells := make([]int, newWidth*m.height)
	for r := 0; r < m.height; r++ {
		copy(cells[r*newWidth:], m.cells[r*m.width:r*m.width+j])
		copy(cells[r*newWidth+j:], m.cells[r*m.width+j+1:(r+1)*m.width])
	}

	m.cells = cells
	m.width = newWidth

	return nil
}
