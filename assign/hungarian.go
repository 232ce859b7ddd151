package assign

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matchmax/matrix"
)

// Hungarian solves the assignment problem by cost-matrix reduction. The
// maximization objective is first converted to the standard minimization
// form (negate, then shift non-negative), rows and columns are reduced so
// every line holds a zero, and a cover/augment loop runs until the stopping
// rule is met. Extraction then walks the reduced copy row by row, takes the
// first zero in a still-free column, and reads the ORIGINAL value at that
// position out of the untouched input.
//
// The line cover and the stopping rule are heuristic (see the package doc):
// cover a zero's column when another zero shares it, else its row when
// another zero shares that, else nothing; stop when a greedy zero marking
// covers every row or every column. Both deviate from the textbook
// algorithm and can yield a suboptimal assignment on some inputs; the
// deviation is preserved deliberately. opts.MaxIterations fences the loop:
// exceeding it returns ErrNoConvergence instead of spinning.
//
// The caller's matrix is never mutated; all destructive reduction happens on
// an internal deep copy. Cover bookkeeping persists across loop iterations
// (lines once drawn stay drawn), while the stopping rule re-marks zeros from
// scratch on every pass.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix, ErrBadOptions, ErrNoConvergence.
//
// Complexity: O(MaxIterations·height·width·(height+width)) worst case;
// O(height·width) extra memory for the working copy.
func Hungarian(m *matrix.Matrix, opts Options) (Result, error) {
	if err := validateMatrix(m); err != nil {
		return Result{}, err
	}
	if opts.MaxIterations <= 0 {
		return Result{}, fmt.Errorf("MaxIterations=%d: %w", opts.MaxIterations, ErrBadOptions)
	}

	// Stage 1 — owned working copy; the input stays read-only from here on.
	work := m.Clone()

	// Stage 2 — maximization -> minimization, then make all cells >= 0.
	negate(work)
	shiftNonNegative(work)

	// Stage 3 — classic reductions: a zero in every row, then every column.
	reduceRows(work)
	reduceColumns(work)

	// Stage 4 — cover/augment loop under the heuristic stopping rule.
	var (
		coveredRows = make([]bool, work.Height())
		coveredCols = make([]bool, work.Width())
		iter        int
	)
	for !coverIsComplete(work) {
		iter++
		if iter > opts.MaxIterations {
			return Result{}, fmt.Errorf("after %d iterations: %w", opts.MaxIterations, ErrNoConvergence)
		}
		coverZeros(work, coveredRows, coveredCols)
		createZeros(work, coveredRows, coveredCols)
	}

	// Stage 5 — read the assignment out of the reduced copy, values out of
	// the original.
	return extract(m, work), nil
}

// negate flips the sign of every cell, turning the maximization objective
// into the minimization form the reduction steps expect.
func negate(w *matrix.Matrix) {
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			mustSet(w, r, c, -mustAt(w, r, c))
		}
	}
}

// shiftNonNegative subtracts the global minimum from every cell when that
// minimum is negative, so all values end up >= 0.
func shiftNonNegative(w *matrix.Matrix) {
	minValue := math.MaxInt
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			if v := mustAt(w, r, c); v < minValue {
				minValue = v
			}
		}
	}
	if minValue >= 0 {
		return
	}
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			mustSet(w, r, c, mustAt(w, r, c)-minValue)
		}
	}
}

// reduceRows subtracts each row's minimum from all its cells, guaranteeing
// at least one zero per row.
func reduceRows(w *matrix.Matrix) {
	for r := 0; r < w.Height(); r++ {
		minValue := math.MaxInt
		for c := 0; c < w.Width(); c++ {
			if v := mustAt(w, r, c); v < minValue {
				minValue = v
			}
		}
		for c := 0; c < w.Width(); c++ {
			mustSet(w, r, c, mustAt(w, r, c)-minValue)
		}
	}
}

// reduceColumns subtracts each column's minimum from all its cells,
// guaranteeing at least one zero per column.
func reduceColumns(w *matrix.Matrix) {
	for c := 0; c < w.Width(); c++ {
		minValue := math.MaxInt
		for r := 0; r < w.Height(); r++ {
			if v := mustAt(w, r, c); v < minValue {
				minValue = v
			}
		}
		for r := 0; r < w.Height(); r++ {
			mustSet(w, r, c, mustAt(w, r, c)-minValue)
		}
	}
}

// coverIsComplete is the heuristic stopping rule: greedily mark zeros whose
// row and column are both still unmarked, then report success when the
// marking touched every row or every column. This is NOT the textbook
// "minimum lines == matrix dimension" test; see the package doc for the
// consequences. Scratch is fresh on every call.
func coverIsComplete(w *matrix.Matrix) bool {
	var (
		markedRows = make([]bool, w.Height())
		markedCols = make([]bool, w.Width())
	)
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			if mustAt(w, r, c) == 0 && !markedRows[r] && !markedCols[c] {
				markedRows[r] = true
				markedCols[c] = true
			}
		}
	}

	rowCount := 0
	for _, marked := range markedRows {
		if marked {
			rowCount++
		}
	}
	colCount := 0
	for _, marked := range markedCols {
		if marked {
			colCount++
		}
	}

	return rowCount == w.Height() || colCount == w.Width()
}

// coverZeros draws lines over zeros: for each uncovered zero, cover its
// column if another zero lies elsewhere in that column, else its row if
// another zero lies elsewhere in that row, else neither. A heuristic stand-in
// for minimum-line cover selection — it can pick a sub-minimal or outright
// unhelpful line set, which is exactly why the outer loop carries a cap.
func coverZeros(w *matrix.Matrix, coveredRows, coveredCols []bool) {
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			if coveredRows[r] || coveredCols[c] || mustAt(w, r, c) != 0 {
				continue
			}

			if zeroElsewhereInColumn(w, r, c) {
				coveredCols[c] = true
			} else if zeroElsewhereInRow(w, r, c) {
				coveredRows[r] = true
			}
			// A lone zero covers nothing; extraction will claim it as-is.
		}
	}
}

// zeroElsewhereInColumn reports whether column c holds a zero in a row other
// than r.
func zeroElsewhereInColumn(w *matrix.Matrix, r, c int) bool {
	for r2 := 0; r2 < w.Height(); r2++ {
		if r2 != r && mustAt(w, r2, c) == 0 {
			return true
		}
	}

	return false
}

// zeroElsewhereInRow reports whether row r holds a zero in a column other
// than c.
func zeroElsewhereInRow(w *matrix.Matrix, r, c int) bool {
	for c2 := 0; c2 < w.Width(); c2++ {
		if c2 != c && mustAt(w, r, c2) == 0 {
			return true
		}
	}

	return false
}

// createZeros augments the reduced matrix: the minimum uncovered value is
// subtracted from every uncovered cell and added to every cell covered by
// both a row line and a column line; singly-covered cells are untouched.
// When no cell is uncovered there is nothing to augment and the matrix is
// left as-is (the iteration cap then decides the run's fate).
func createZeros(w *matrix.Matrix, coveredRows, coveredCols []bool) {
	minUncovered := math.MaxInt
	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			if !coveredRows[r] && !coveredCols[c] {
				if v := mustAt(w, r, c); v < minUncovered {
					minUncovered = v
				}
			}
		}
	}
	if minUncovered == math.MaxInt {
		return
	}

	for r := 0; r < w.Height(); r++ {
		for c := 0; c < w.Width(); c++ {
			switch {
			case !coveredRows[r] && !coveredCols[c]:
				mustSet(w, r, c, mustAt(w, r, c)-minUncovered)
			case coveredRows[r] && coveredCols[c]:
				mustSet(w, r, c, mustAt(w, r, c)+minUncovered)
			}
		}
	}
}

// extract walks the reduced copy row by row, claims the first zero in a
// still-free column, and reads the value at that position from the original
// matrix. Each row yields at most one entry and each column is claimed at
// most once, so the selection is feasible by construction.
func extract(original, work *matrix.Matrix) Result {
	var (
		usedCols = make([]bool, work.Width())
		res      = Result{Entries: make([]Entry, 0, minInt(work.Width(), work.Height()))}
	)
	for r := 0; r < work.Height(); r++ {
		for c := 0; c < work.Width(); c++ {
			if mustAt(work, r, c) != 0 || usedCols[c] {
				continue
			}

			v := mustAt(original, r, c)
			res.Entries = append(res.Entries, Entry{Row: r, Col: c, Value: v})
			res.Sum += v
			usedCols[c] = true

			break
		}
	}

	return res
}
