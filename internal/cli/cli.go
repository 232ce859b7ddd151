// Package cli implements the matchmax command-line interface.
//
// The CLI is a thin shell over the library packages: matio loads the
// ";"-delimited matrix file, assign runs the requested strategy, and matio
// renders the outcome. Settings come from flags, optionally seeded by a
// TOML config file (--config); explicit flags always win over file values.
//
// Logging goes to stderr via charmbracelet/log and is debug-enabled with
// --verbose; solver output goes to stdout so it can be piped.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

// newLogger creates the CLI logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger stores l in ctx for retrieval by subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or a
// silent fallback when the command runs outside Execute (tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}

	return log.NewWithOptions(io.Discard, log.Options{})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
func (p *progress) done(msg string, args ...any) {
	args = append(args, "elapsed", time.Since(p.start).Round(time.Microsecond))
	p.logger.Info(msg, args...)
}
