package execution

import (
	"context"
	"fmt"
	"time"

	"nrvtest/internal/domain"
	"nrvtest/internal/ui"
)

// TestRunner runs one named test script and reports its result
type TestRunner interface {
	Run(ctx context.Context, name string) domain.TestResult
}

// Batch executes test scripts one at a time, in order. Test executions never
// overlap: each simulation already saturates the machine on its own.
type Batch struct {
	runner   TestRunner
	progress *ui.ProgressBar
}

// NewBatch creates a new Batch
func NewBatch(runner TestRunner) *Batch {
	return &Batch{runner: runner}
}

// SetProgress sets the progress bar for the batch
func (b *Batch) SetProgress(progress *ui.ProgressBar) {
	b.progress = progress
}

// Execute runs every candidate exactly once, in the given order, and returns
// all results plus the total wall-clock duration. A failing candidate never
// stops the batch unless failFast is set.
func (b *Batch) Execute(ctx context.Context, candidates []string, failFast bool) ([]domain.TestResult, time.Duration, error) {
	if len(candidates) == 0 {
		return nil, 0, nil
	}

	start := time.Now()
	var results []domain.TestResult
	var passed, failed int

	for _, name := range candidates {
		fmt.Println(name)

		result := b.runner.Run(ctx, name)
		results = append(results, result)

		if result.Success {
			passed++
		} else {
			failed++
		}
		if b.progress != nil {
			b.progress.Update(passed, failed)
		}

		if failFast && !result.Success {
			break
		}
	}

	if b.progress != nil {
		b.progress.Finish()
	}
	return results, time.Since(start), nil
}

// Failures extracts the failed-test list from a batch's results, preserving
// execution order.
func Failures(results []domain.TestResult) []domain.TestFailure {
	var failures []domain.TestFailure
	for _, result := range results {
		if result.Success {
			continue
		}
		failures = append(failures, domain.TestFailure{
			TestName:        result.Name,
			FilePath:        result.Path,
			ExitCode:        result.ExitCode,
			DurationSeconds: result.Duration.Seconds(),
			Output:          result.Output,
		})
	}
	return failures
}
