package assign_test

import (
	"testing"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHungarian_InvalidInput verifies matrix and option validation happens
// before the working copy is made.
func TestHungarian_InvalidInput(t *testing.T) {
	opts := assign.DefaultOptions()

	_, err := assign.Hungarian(nil, opts)
	assert.ErrorIs(t, err, assign.ErrNilMatrix)

	_, err = assign.Hungarian(degenerateMatrix(t), opts)
	assert.ErrorIs(t, err, assign.ErrInvalidMatrix)

	opts.MaxIterations = 0
	_, err = assign.Hungarian(mustMatrix(t, [][]int{{1}}), opts)
	assert.ErrorIs(t, err, assign.ErrBadOptions, "MaxIterations <= 0 must be rejected")
}

// TestHungarian_SingleCell verifies the 1×1 scenario: total 5, one entry.
func TestHungarian_SingleCell(t *testing.T) {
	m := mustMatrix(t, [][]int{{5}})

	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 0, Value: 5}}, res.Entries)
}

// TestHungarian_TwoByTwo verifies [[1,2],[3,4]] reduces to the optimum 5;
// the reduced copy pairs (0,0) with (1,1).
func TestHungarian_TwoByTwo(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, []assign.Entry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 4}}, res.Entries)
	assertFeasible(t, m, res)
}

// TestHungarian_OneCoverPass exercises a matrix whose zero pattern after
// reduction forces exactly one cover/augment pass before the stopping rule
// is satisfied; the result matches the Backtrack optimum (27).
func TestHungarian_OneCoverPass(t *testing.T) {
	m := mustMatrix(t, [][]int{{9, 9, 9}, {9, 7, 6}, {5, 9, 4}})

	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 27, res.Sum)
	assertFeasible(t, m, res)

	exact, err := assign.Backtrack(m)
	require.NoError(t, err)
	assert.Equal(t, exact.Sum, res.Sum)
}

// TestHungarian_TwoCoverPasses exercises the cover/augment loop at least
// twice: with MaxIterations=1 the run must fail with ErrNoConvergence, with
// the default cap it converges to the optimum 26.
func TestHungarian_TwoCoverPasses(t *testing.T) {
	rows := [][]int{{9, 9, 9}, {9, 8, 7}, {9, 8, 5}}

	tight := assign.DefaultOptions()
	tight.MaxIterations = 1
	_, err := assign.Hungarian(mustMatrix(t, rows), tight)
	assert.ErrorIs(t, err, assign.ErrNoConvergence, "one iteration must not be enough")

	m := mustMatrix(t, rows)
	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 26, res.Sum)
	assertFeasible(t, m, res)
}

// TestHungarian_HeuristicNonConvergence pins down the documented defect of
// the heuristic line cover: on this input the loop can never satisfy the
// stopping rule and the iteration cap surfaces ErrNoConvergence instead of
// spinning forever.
func TestHungarian_HeuristicNonConvergence(t *testing.T) {
	m := mustMatrix(t, [][]int{{9, 9, 9}, {9, 8, 7}, {9, 6, 5}})

	_, err := assign.Hungarian(m, assign.DefaultOptions())
	assert.ErrorIs(t, err, assign.ErrNoConvergence)
}

// TestHungarian_DoesNotMutateInput verifies all destructive reduction stays
// on the internal copy.
func TestHungarian_DoesNotMutateInput(t *testing.T) {
	m := mustMatrix(t, [][]int{{9, 9, 9}, {9, 8, 7}, {9, 8, 5}})
	before := m.Clone()

	_, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, m.Equal(before), "the caller's matrix must stay untouched")
}

// TestHungarian_NegativeValues verifies the non-negativity shift: a matrix
// with negative cells still solves to the Backtrack optimum.
func TestHungarian_NegativeValues(t *testing.T) {
	m := mustMatrix(t, [][]int{{-2, 4}, {4, -2}})

	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 8, res.Sum)
	assertFeasible(t, m, res)
}

// TestHungarian_Rectangular verifies non-square inputs: entry count bounded
// by the smaller dimension, values read from the original matrix.
func TestHungarian_Rectangular(t *testing.T) {
	m := mustMatrix(t, [][]int{{7, 5, 11}, {5, 4, 1}})

	res, err := assign.Hungarian(m, assign.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 16, res.Sum)
	assert.Equal(t, 2, res.Count())
	assertFeasible(t, m, res)
}
