// Package assign: sentinel error set.
// Solvers MUST return these sentinels (optionally wrapped with %w for
// context) and tests MUST match them via errors.Is. No solver panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in private helpers.

package assign

import "errors"

var (
	// ErrNilMatrix indicates a nil *matrix.Matrix was passed to a solver.
	ErrNilMatrix = errors.New("assign: nil matrix")

	// ErrInvalidMatrix indicates a matrix with non-positive width or height.
	// New cannot build such a matrix, but row/column deletion can shrink one
	// into this state.
	ErrInvalidMatrix = errors.New("assign: matrix has no rows or columns")

	// ErrNoConvergence is returned by Hungarian when the heuristic
	// cover/augment loop fails to satisfy the stopping rule within
	// Options.MaxIterations. The heuristic line cover is known to pick
	// unhelpful lines on some inputs; the cap turns that into a clean error.
	ErrNoConvergence = errors.New("assign: cover loop did not converge")

	// ErrBadOptions indicates inconsistent Options (e.g. MaxIterations <= 0
	// for the Hungarian solver).
	ErrBadOptions = errors.New("assign: invalid options")

	// ErrUnknownAlgorithm is returned by Solve for an Algorithm value it
	// does not route.
	ErrUnknownAlgorithm = errors.New("assign: unknown algorithm")
)
