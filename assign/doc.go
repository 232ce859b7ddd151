// Package assign provides solvers for the assignment problem on integer
// matrices: choose at most min(height, width) cells, no two sharing a row
// or a column, maximizing their sum.
//
// Three strategies are offered, trading time for optimality:
//
//   - Backtrack — exhaustive depth-first search over row→column assignments.
//     Exact optimum. Complexity: O(width!/(width−height)!) worst case; use it
//     on small matrices or as a correctness oracle for the other two.
//
//   - Greedy — one forward pass over rows, each taking the best still-free
//     column. Feasible but possibly suboptimal: an early row's pick can block
//     a larger value below it. Complexity: O(height·width).
//
//   - Hungarian — reduce-and-cover solver: negation, non-negativity shift,
//     row/column reduction, then a cover/augment loop followed by zero
//     extraction against the untouched input matrix.
//
// ⚠️ The Hungarian line cover and stopping rule here are HEURISTIC, not the
// textbook minimum-vertex-cover construction: a line is drawn only when a
// zero shares its column (preferred) or row with another zero, and the loop
// stops as soon as a greedy zero marking covers every row or every column.
// This can pick a sub-minimal line set and, on some inputs, a suboptimal
// assignment. The deviation is deliberate: callers depend on these exact
// selections, so they are pinned by tests rather than corrected. The loop
// is fenced by Options.MaxIterations, which turns a non-converging cover
// into ErrNoConvergence instead of spinning forever.
//
// All solvers are pure: they validate up front, never mutate the caller's
// matrix (Hungarian works on a deep copy), and return either a complete
// Result or a sentinel error — never a partial selection. Calls are
// single-threaded and reentrant; give each concurrent call its own matrix.
//
// Use Solve with an Options.Algo to route between strategies, or call the
// strategy functions directly.
package assign
