// Package matrix provides the integer matrix consumed by the assign solvers.
//
// The representation is a flat, row-major []int: every declared cell exists,
// point access is O(1), and Clone is the only way two matrices may ever share
// history (never storage). Editing operations mirror the classic
// insert/delete surface:
//
//   - InsertRow prepends: the new row becomes row 0 and every existing row
//     shifts down by one.
//   - InsertColumn appends at the new highest column index.
//   - DeleteRow / DeleteColumn shrink the logical dimensions and renumber.
//
// All operations validate their inputs and return package sentinels
// (ErrInvalidDimensions, ErrOutOfRange, ErrSizeMismatch, ...); nothing in
// this package panics on user input.
//
// Matrices are not safe for concurrent mutation; hand each goroutine its
// own Clone.
package matrix
