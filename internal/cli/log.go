// Package cli implements the wikireader command-line interface.
//
// Commands fetch single articles, assemble the monthly edition, search
// titles and run the HTTP server. All of them share one wiring path
// (newApp) so the CLI and the server exercise the same pipelines.
//
// # Commands
//
//   - article: Fetch and transform an article (HTML or Markdown)
//   - edition: Assemble the monthly edition (JSON or YAML)
//   - search: Suggest article titles
//   - styles: Print the stylesheet bundle URL
//   - serve: Serve the reader API over HTTP
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr; command output goes to stdout or the file given with --output.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Fetched AC/DC (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
