package assign

import "github.com/katalvlaran/matchmax/matrix"

// Greedy approximates the assignment problem with a single forward pass:
// each row, in index order, takes the largest value among columns no earlier
// row has claimed. If every column is already taken (height > width), the
// row contributes nothing.
//
// This is a local-maximum heuristic with no lookahead: an early row's best
// pick can block a much larger value in a later row, so the returned Sum is
// a feasible lower bound on the optimum, not the optimum itself. Ties break
// toward the lowest column index (strictly-greater comparison), making the
// pass deterministic.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix.
//
// Complexity: O(height·width) time, O(width) extra space.
func Greedy(m *matrix.Matrix) (Result, error) {
	if err := validateMatrix(m); err != nil {
		return Result{}, err
	}

	var (
		width    = m.Width()
		height   = m.Height()
		usedCols = make([]bool, width)
		res      = Result{Entries: make([]Entry, 0, minInt(width, height))}
	)

	for r := 0; r < height; r++ {
		bestCol := -1
		bestVal := 0
		for c := 0; c < width; c++ {
			if usedCols[c] {
				continue
			}
			if v := mustAt(m, r, c); bestCol < 0 || v > bestVal {
				bestCol, bestVal = c, v
			}
		}
		if bestCol < 0 {
			continue // all columns taken; row yields nothing
		}

		usedCols[bestCol] = true
		res.Entries = append(res.Entries, Entry{Row: r, Col: bestCol, Value: bestVal})
		res.Sum += bestVal
	}

	return res, nil
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
