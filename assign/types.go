package assign

import "fmt"

// Entry is one selected cell: its position in the ORIGINAL matrix and the
// original (pre-transform) value found there.
type Entry struct {
	Row   int // row index in the input matrix
	Col   int // column index in the input matrix
	Value int // value of the input matrix at (Row, Col)
}

// Result holds the outcome of a solver run.
//
// Entries are listed in discovery order (for every solver here that is
// ascending row order) and never share a row or a column. Sum is the total
// of the entry values. A Result is complete by construction: solvers return
// an error instead of a partial selection.
type Result struct {
	Entries []Entry
	Sum     int
}

// Count returns the number of selected entries, always at most
// min(height, width) of the solved matrix.
func (r Result) Count() int { return len(r.Entries) }

// Algorithm selects a solving strategy for Solve.
type Algorithm int

const (
	// AlgoBacktrack routes to the exhaustive exact search.
	AlgoBacktrack Algorithm = iota

	// AlgoGreedy routes to the one-pass row-wise heuristic.
	AlgoGreedy

	// AlgoHungarian routes to the reduce-and-cover solver.
	AlgoHungarian
)

// String returns the canonical lowercase name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoBacktrack:
		return "backtrack"
	case AlgoGreedy:
		return "greedy"
	case AlgoHungarian:
		return "hungarian"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (as produced by Algorithm.String) back to its
// Algorithm value. Unknown names yield ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "backtrack":
		return AlgoBacktrack, nil
	case "greedy":
		return AlgoGreedy, nil
	case "hungarian":
		return AlgoHungarian, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// DefaultMaxIterations bounds the Hungarian cover/augment loop. Reduction
// already guarantees a zero per row and column, so well-behaved inputs
// converge in a handful of passes; the cap only exists to fence the
// heuristic cover on adversarial inputs.
const DefaultMaxIterations = 1000

// Options configures Solve and the Hungarian solver.
type Options struct {
	// Algo selects the strategy used by Solve. The zero value is
	// AlgoBacktrack, the exact solver.
	Algo Algorithm

	// MaxIterations caps the Hungarian cover/augment loop; when exceeded the
	// solver returns ErrNoConvergence. Must be > 0 for Hungarian runs.
	// Backtrack and Greedy ignore it.
	MaxIterations int
}

// DefaultOptions returns the canonical starting configuration.
func DefaultOptions() Options {
	return Options{
		Algo:          AlgoBacktrack,
		MaxIterations: DefaultMaxIterations,
	}
}
