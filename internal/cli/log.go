package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled, timestamped lines to w. Commands retrieve it
// with log.FromContext; the root command attaches it before any subcommand
// runs.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}
