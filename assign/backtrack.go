package assign

import "github.com/katalvlaran/matchmax/matrix"

// Backtrack solves the assignment problem exactly by exhaustive depth-first
// search: each row in turn tries every still-free column, recursing with the
// accumulated sum, and un-marks its choice on the way back out.
//
// Semantics:
//   - The best sum starts at 0, so an all-negative matrix yields the empty
//     selection with Sum 0 (selecting nothing is a feasible assignment).
//   - A candidate replaces the incumbent only when strictly greater, so ties
//     keep the first-found selection; search order is fixed (rows ascending,
//     columns ascending), making the result deterministic.
//   - When height > width a row can run out of free columns; such a row is
//     skipped and contributes nothing, letting the rest of the search finish.
//
// Errors: ErrNilMatrix, ErrInvalidMatrix.
//
// Complexity: O(width! / (width−height)!) time worst case, O(width+height)
// extra space. Intended for small matrices or as a correctness oracle.
func Backtrack(m *matrix.Matrix) (Result, error) {
	if err := validateMatrix(m); err != nil {
		return Result{}, err
	}

	s := &backtrackState{
		m:        m,
		width:    m.Width(),
		height:   m.Height(),
		usedCols: make([]bool, m.Width()),
		rowToCol: make([]int, m.Height()),
	}
	for r := range s.rowToCol {
		s.rowToCol[r] = -1 // -1 = row currently unassigned
	}

	s.explore(0, 0)

	res := Result{Sum: s.bestSum, Entries: make([]Entry, 0, len(s.best))}
	res.Entries = append(res.Entries, s.best...)

	return res, nil
}

// backtrackState carries the scratch of one Backtrack run: column usage, the
// current partial assignment, and the best complete assignment found so far.
type backtrackState struct {
	m             *matrix.Matrix
	width, height int
	usedCols      []bool
	rowToCol      []int // rowToCol[r] = column assigned to row r, or -1
	bestSum       int
	best          []Entry
}

// explore advances the search from row with the given accumulated sum.
func (s *backtrackState) explore(row, sum int) {
	if row == s.height {
		if sum > s.bestSum {
			s.bestSum = sum
			s.record()
		}

		return
	}

	assigned := false
	for c := 0; c < s.width; c++ {
		if s.usedCols[c] {
			continue
		}
		assigned = true

		s.usedCols[c] = true
		s.rowToCol[row] = c
		s.explore(row+1, sum+mustAt(s.m, row, c))

		// Backtrack: free the column before trying the next one.
		s.usedCols[c] = false
		s.rowToCol[row] = -1
	}

	// Every column taken (height > width): this row contributes nothing.
	if !assigned {
		s.explore(row+1, sum)
	}
}

// record snapshots the current assignment as the new incumbent.
func (s *backtrackState) record() {
	s.best = s.best[:0]
	for r := 0; r < s.height; r++ {
		if c := s.rowToCol[r]; c >= 0 {
			s.best = append(s.best, Entry{Row: r, Col: c, Value: mustAt(s.m, r, c)})
		}
	}
}
