// Package matchmax solves the assignment problem on integer matrices:
// pick at most min(rows, cols) cells, no two sharing a row or column,
// maximizing their sum.
//
// 🚀 What is matchmax?
//
//	A small, focused library that brings together:
//		• Matrix model: a bounds-checked integer matrix with row/column
//		  insertion, deletion and deep copies
//		• Backtrack: exhaustive search — exact optimum, exponential time
//		• Greedy: one-pass row-wise heuristic — fast, possibly suboptimal
//		• Hungarian: reduce-and-cover solver with a heuristic line cover
//		• I/O helpers: ";"-delimited text loader and table presenters
//
// ✨ Why choose matchmax?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict sentinels – every failure is a named error, never a panic
//   - Deterministic – fixed tie-breaking, no hidden randomness
//   - Honest – the Hungarian cover heuristic is documented, not hidden
//
// Under the hood, everything is organized under three subpackages:
//
//	assign/ — Backtrack, Greedy and Hungarian solvers + unified Solve dispatcher
//	matio/  — delimited-text loader and console presenters
//	matrix/ — the integer matrix the solvers consume
//
// Quick ASCII example:
//
//	    1 ; 2
//	    3 ; 4
//
//	is a 2×2 matrix whose best assignment is (0,0)+(1,1) = 1+4 = 5.
//
// A cobra-based CLI lives under cmd/matchmax for loading matrices from
// files and comparing the three strategies side by side.
//
//	go get github.com/katalvlaran/matchmax
package matchmax
