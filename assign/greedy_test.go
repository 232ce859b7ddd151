package assign_test

import (
	"testing"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreedy_InvalidInput verifies both dimensions are validated; the
// zero-height case is reachable only through row deletion and is checked
// explicitly.
func TestGreedy_InvalidInput(t *testing.T) {
	_, err := assign.Greedy(nil)
	assert.ErrorIs(t, err, assign.ErrNilMatrix)

	_, err = assign.Greedy(degenerateMatrix(t))
	assert.ErrorIs(t, err, assign.ErrInvalidMatrix, "zero height must be rejected too")
}

// TestGreedy_SingleCell verifies the 1×1 scenario: total 5, one entry.
func TestGreedy_SingleCell(t *testing.T) {
	m := mustMatrix(t, [][]int{{5}})

	res, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 0, Value: 5}}, res.Entries)
	assertFeasible(t, m, res)
}

// TestGreedy_LocalMaximumTrap verifies the documented failure mode: row 0
// grabs 10 at column 0 and blocks the 9+10=19 optimum.
func TestGreedy_LocalMaximumTrap(t *testing.T) {
	m := mustMatrix(t, [][]int{{10, 9}, {10, 1}})

	res, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.Equal(t, 11, res.Sum, "greedy must fall into the local maximum")
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 0, Value: 10}, {Row: 1, Col: 1, Value: 1}}, res.Entries)
	assertFeasible(t, m, res)
}

// TestGreedy_TieBreaksLowestColumn verifies the deterministic tie-break:
// among equal candidates the first column encountered wins.
func TestGreedy_TieBreaksLowestColumn(t *testing.T) {
	m := mustMatrix(t, [][]int{{3, 3, 3}, {3, 3, 3}})

	res, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 0, Value: 3}, {Row: 1, Col: 1, Value: 3}}, res.Entries)
}

// TestGreedy_TallMatrix verifies rows beyond the column supply contribute
// nothing instead of failing.
func TestGreedy_TallMatrix(t *testing.T) {
	m := mustMatrix(t, [][]int{{5}, {7}, {9}})

	res, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Sum, "row 0 takes the only column; later rows yield nothing")
	assert.Equal(t, 1, res.Count())
	assertFeasible(t, m, res)
}

// TestGreedy_NegativeValues verifies a row still picks its best cell even
// when every candidate is negative (a row is never skipped while a free
// column exists).
func TestGreedy_NegativeValues(t *testing.T) {
	m := mustMatrix(t, [][]int{{-5, -1}, {-2, -8}})

	res, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 1, Value: -1}, {Row: 1, Col: 0, Value: -2}}, res.Entries)
	assert.Equal(t, -3, res.Sum)
}

// TestGreedy_DoesNotMutateInput verifies the input matrix is read-only for
// the heuristic pass.
func TestGreedy_DoesNotMutateInput(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})
	before := m.Clone()

	_, err := assign.Greedy(m)
	require.NoError(t, err)
	assert.True(t, m.Equal(before))
}
