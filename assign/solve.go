// Package assign - unified dispatcher for the three solving strategies.
//
// Design principles:
//   - Deterministic: fixed tie-breaking everywhere; no randomness.
//   - Strict sentinels: only errors from errors.go; %w adds context only.
//   - The dispatcher validates nothing itself beyond routing — each strategy
//     owns its preconditions, so direct calls behave identically.

package assign

import "github.com/katalvlaran/matchmax/matrix"

// Solve routes m to the strategy selected by opts.Algo and returns its
// Result. It is a convenience over calling Backtrack, Greedy or Hungarian
// directly; semantics and errors are exactly those of the routed function,
// plus ErrUnknownAlgorithm for an unroutable opts.Algo.
//
// Complexity: that of the routed strategy.
func Solve(m *matrix.Matrix, opts Options) (Result, error) {
	switch opts.Algo {
	case AlgoBacktrack:
		return Backtrack(m)
	case AlgoGreedy:
		return Greedy(m)
	case AlgoHungarian:
		return Hungarian(m, opts)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
