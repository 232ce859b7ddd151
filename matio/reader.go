package matio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matchmax/matrix"
)

// Read parses one matrix from r. Width is the field count of the first
// line, height the number of lines; every later line must match the first
// line's field count. Fields are trimmed of surrounding whitespace before
// integer parsing, and a trailing empty line is tolerated.
//
// Errors: ErrEmptyInput, ErrRaggedRow (wrapped with the line number),
// ErrBadValue (wrapped with line and field), plus any error from the
// underlying reader.
//
// Complexity: O(width·height).
func Read(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue // tolerate blank lines, usually a trailing newline
		}
		rows = append(rows, strings.Split(line, cfg.delimiter))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	width := len(rows[0])
	m, err := matrix.New(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("matio: %d×%d: %w", width, len(rows), err)
	}

	for i, fields := range rows {
		if len(fields) != width {
			return nil, fmt.Errorf("matio: line %d has %d values, want %d: %w", i+1, len(fields), width, ErrRaggedRow)
		}
		for j, field := range fields {
			v, convErr := strconv.Atoi(strings.TrimSpace(field))
			if convErr != nil {
				return nil, fmt.Errorf("matio: line %d value %d (%q): %w", i+1, j+1, field, ErrBadValue)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// ReadFile opens path and delegates to Read. Open and read failures wrap
// the operating-system error (match with errors.Is against fs.ErrNotExist
// and friends); content failures carry the matio sentinels.
func ReadFile(path string, opts ...Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}
