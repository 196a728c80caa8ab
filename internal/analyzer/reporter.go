package analyzer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	issueHeaderColor = color.New(color.FgRed)
	parseErrColor    = color.New(color.FgYellow)
	summaryOKColor   = color.New(color.FgGreen)
)

// Reporter renders analysis results for humans. It is the only component
// that knows about presentation; findings never affect the process exit
// status.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out. Color is controlled
// globally via color.NoColor.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report renders one file's results. Clean files produce no output.
func (r *Reporter) Report(result FileResult) {
	if result.Err != nil {
		// Err already names the file.
		parseErrColor.Fprintf(r.out, "skipped: %v\n", result.Err)
		return
	}
	if len(result.Issues) == 0 {
		return
	}

	issueHeaderColor.Fprintf(r.out, "Found issues in %s:\n", result.Path)
	for _, issue := range result.Issues {
		fmt.Fprintf(r.out, "    %s:%d %s\n", result.Path, issue.Line, issue.Msg)
	}
}

// Summary renders one closing line for the whole batch.
func (r *Reporter) Summary(results []FileResult) {
	var issues, flagged, skipped int
	for _, res := range results {
		if res.Err != nil {
			skipped++
			continue
		}
		if len(res.Issues) > 0 {
			flagged++
			issues += len(res.Issues)
		}
	}

	if issues == 0 && skipped == 0 {
		summaryOKColor.Fprintf(r.out, "✓ %d files checked, no layout issues\n", len(results))
		return
	}
	fmt.Fprintf(r.out, "%d files checked: %d issues in %d files, %d skipped\n",
		len(results), issues, flagged, skipped)
}
