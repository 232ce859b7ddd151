package assign_test

import (
	"testing"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/katalvlaran/matchmax/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from a 2D literal, failing the test on error.
func mustMatrix(t *testing.T, rows [][]int) *matrix.Matrix {
	t.Helper()
	require.NotEmpty(t, rows, "fixture must have rows")

	m, err := matrix.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for r, row := range rows {
		require.Len(t, row, m.Width(), "fixture rows must be rectangular")
		for c, v := range row {
			require.NoError(t, m.Set(r, c, v))
		}
	}

	return m
}

// degenerateMatrix builds a matrix whose height was deleted down to zero —
// the only way to obtain non-positive dimensions past New's validation.
func degenerateMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()

	m, err := matrix.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, m.DeleteRow(0))

	return m
}

// assertFeasible checks the structural solver contract: no shared rows or
// columns, every entry's value equal to the original matrix at its position,
// entry count at most min(width, height), and Sum consistent with Entries.
func assertFeasible(t *testing.T, m *matrix.Matrix, res assign.Result) {
	t.Helper()

	usedRows := make(map[int]bool, len(res.Entries))
	usedCols := make(map[int]bool, len(res.Entries))
	sum := 0
	for _, e := range res.Entries {
		assert.False(t, usedRows[e.Row], "row %d selected twice", e.Row)
		assert.False(t, usedCols[e.Col], "column %d selected twice", e.Col)
		usedRows[e.Row] = true
		usedCols[e.Col] = true

		v, err := m.At(e.Row, e.Col)
		require.NoError(t, err)
		assert.Equal(t, v, e.Value, "entry (%d,%d) must carry the original value", e.Row, e.Col)
		sum += e.Value
	}

	assert.Equal(t, sum, res.Sum, "Sum must equal the total of Entries")
	limit := m.Width()
	if m.Height() < limit {
		limit = m.Height()
	}
	assert.LessOrEqual(t, res.Count(), limit, "entry count must not exceed min(width, height)")
}
