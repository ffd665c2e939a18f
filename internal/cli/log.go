// Package cli implements the slngraph command-line interface.
//
// The CLI is a single cobra command that takes one directory argument,
// runs the discovery pipeline over it, and writes the graph document next
// to the scanned sources. It supports verbose logging via the
// charmbracelet/log library.
//
// # Logging
//
// --verbose (-v) switches the logger to debug level, which reports every
// solution found and every empty project file skipped.
//
// # Configuration
//
// Settings may come from a TOML file given with --config, or from
// .slngraph.toml in the scanned directory. Flags override file values.
//
// # Example
//
//	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Wrote 2 files (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
