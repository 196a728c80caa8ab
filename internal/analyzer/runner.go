package analyzer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProgressReporter receives batch progress callbacks.
type ProgressReporter interface {
	OnCheckStart(totalFiles int)
	OnFileChecked(path string)
}

// NoOpProgressReporter discards all progress callbacks.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnCheckStart(int)     {}
func (NoOpProgressReporter) OnFileChecked(string) {}

// Runner analyzes a batch of files with a bounded worker pool. Each file's
// analysis is an independent pure computation, so workers need no
// coordination; results are slotted by input index to keep the output order
// deterministic regardless of scheduling.
type Runner struct {
	analyzer *Analyzer
	workers  int
	progress ProgressReporter
}

// NewRunner creates a Runner. workers <= 0 means one worker per CPU.
func NewRunner(analyzer *Analyzer, workers int, progress ProgressReporter) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if progress == nil {
		progress = NoOpProgressReporter{}
	}
	return &Runner{
		analyzer: analyzer,
		workers:  workers,
		progress: progress,
	}
}

// Run analyzes every file and returns one result per input path, in input
// order. The only error returned is context cancellation.
func (r *Runner) Run(ctx context.Context, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))

	r.progress.OnCheckStart(len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.analyzer.AnalyzeFile(path)
			r.progress.OnFileChecked(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
