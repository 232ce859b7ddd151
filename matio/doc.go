// Package matio loads matrices from delimited text and renders matrices
// and solver results for humans.
//
// The wire format is one matrix row per line, values separated by ";"
// (configurable via WithDelimiter): width is inferred from the first line's
// field count and height from the line count. Read reports content problems
// (ragged rows, non-integer tokens, empty input) with package sentinels,
// while ReadFile wraps the operating-system error for unreadable files, so
// the two failure families stay distinguishable via errors.Is.
//
// The presenters are the inverse boundary: Write round-trips a matrix back
// into the delimited format, Fprint renders a tab-aligned grid, and
// FprintResult renders a solver selection with its total. The solver
// packages themselves never format or print anything.
package matio
