// Package matio: sentinel error set for content problems. File-system
// failures are NOT translated into these; ReadFile wraps the OS error so
// "file unreadable" and "content malformed" remain separate families.

package matio

import "errors"

var (
	// ErrEmptyInput indicates the source held no matrix rows at all.
	ErrEmptyInput = errors.New("matio: input holds no rows")

	// ErrRaggedRow indicates a line whose field count differs from the
	// width established by the first line.
	ErrRaggedRow = errors.New("matio: row width differs from first row")

	// ErrBadValue indicates a field that does not parse as an integer.
	ErrBadValue = errors.New("matio: value is not an integer")

	// ErrNilMatrix indicates a nil matrix passed to a presenter.
	ErrNilMatrix = errors.New("matio: nil matrix")
)
