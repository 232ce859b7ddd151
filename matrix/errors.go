// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so failures remain greppable
// once wrapped at outer boundaries with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrInvalidDimensions is returned by New when width or height is <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside current bounds.
	// Public indexers (At/Set/Row/Column/DeleteRow/DeleteColumn) return this,
	// never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates an inserted row/column whose length does not
	// match the current width/height.
	ErrSizeMismatch = errors.New("matrix: inserted slice length mismatch")

	// ErrTooLarge is returned when the requested cell count cannot be backed
	// by a single allocation. This is the recoverable mapping of the
	// allocation-failure condition a manual-memory implementation would hit.
	ErrTooLarge = errors.New("matrix: dimensions exceed allocation limit")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonInteger is returned by FromGonum when a source value is not an
	// exact integer representable as int.
	ErrNonInteger = errors.New("matrix: value is not an exact integer")
)
