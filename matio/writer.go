package matio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/katalvlaran/matchmax/matrix"
)

// Write renders m back into the delimited text format, one row per line.
// The output of Write round-trips through Read with the same delimiter.
func Write(w io.Writer, m *matrix.Matrix, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	for r := 0; r < m.Height(); r++ {
		row, err := m.Row(r)
		if err != nil {
			return err
		}
		for c, v := range row {
			if c > 0 {
				b.WriteString(cfg.delimiter)
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Fprint renders m as a tab-aligned grid for console inspection.
func Fprint(w io.Writer, m *matrix.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for r := 0; r < m.Height(); r++ {
		row, err := m.Row(r)
		if err != nil {
			return err
		}
		for c, v := range row {
			if c > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprintf(tw, "%d", v)
		}
		fmt.Fprintln(tw, "\t")
	}

	return tw.Flush()
}

// FprintResult renders a solver selection: one "(row,col) = value" line per
// entry in discovery order, then the total and entry count.
func FprintResult(w io.Writer, res assign.Result) error {
	for _, e := range res.Entries {
		if _, err := fmt.Fprintf(w, "(%d,%d) = %d\n", e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "sum = %d over %d entries\n", res.Sum, res.Count())

	return err
}
