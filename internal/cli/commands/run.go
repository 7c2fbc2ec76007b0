package commands

import (
	"fmt"

	"nrvtest/internal/config"
	"nrvtest/internal/discovery"
	"nrvtest/internal/execution"
	"nrvtest/internal/storage"
	"nrvtest/internal/ui"
	"nrvtest/internal/workspace"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	batch     *execution.Batch
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	batch *execution.Batch,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		batch:     batch,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Tests must never observe stale figures from a previous run
	if err := workspace.ResetDir(rc.config.GetFiguresDir()); err != nil {
		return err
	}

	candidates, err := rc.scanner.Scan(rc.config.GetTestDir())
	if err != nil {
		return err
	}
	candidates = rc.filter.FilterByName(candidates, rc.config.Flags.NameFilter)

	if len(candidates) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(candidates))
	rc.batch.SetProgress(progressBar)

	results, duration, err := rc.batch.Execute(cmd.Context(), candidates, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	failures := execution.Failures(results)

	output, err := rc.storage.Save(results, failures, duration)
	if err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	rc.formatter.PrintSummary(output)

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d unitary test(s) failed", len(failures), len(results))
	}
	return nil
}
