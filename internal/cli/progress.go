package cli

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// CLIProgressReporter renders a progress bar while a batch check runs.
type CLIProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a progress reporter. When quiet, all
// callbacks are no-ops.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnCheckStart(totalFiles int) {
	if c.quiet || totalFiles < 2 {
		return
	}
	c.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Checking files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (c *CLIProgressReporter) OnFileChecked(path string) {
	if c.bar != nil {
		c.bar.Add(1)
	}
}
