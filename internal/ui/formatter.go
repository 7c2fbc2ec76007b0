package ui

import (
	"fmt"

	"github.com/fatih/color"

	"nrvtest/internal/config"
	"nrvtest/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary renders the run's result record: a stats table followed by
// either an all-clear line or the failed-test list.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════╗")
	color.Cyan("║            Unitary Test Statistics            ║")
	color.Cyan("╚═══════════════════════════════════════════════╝")

	fmt.Printf("  %-22s ", "Total tests")
	color.White("%d", meta.TotalTests)
	fmt.Printf("  %-22s ", "Passed")
	color.Green("%d", meta.PassedTests)
	fmt.Printf("  %-22s ", "Failed")
	color.Red("%d", meta.FailedTests)
	fmt.Printf("  %-22s ", "Duration")
	color.White("%.2fs", meta.DurationSeconds)

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed — check the generated figures to validate simulation results")
		return
	}

	color.Red("✗ %d test(s) failed:", meta.FailedTests)
	for _, failure := range output.Details {
		color.Red("    %s (exit %d, %.2fs)", failure.TestName, failure.ExitCode, failure.DurationSeconds)
	}
}

// PrintCandidateList prints the discovered candidates without running them
func (f *Formatter) PrintCandidateList(candidates []string) {
	color.Green("Found %d candidate test(s) in %s:\n", len(candidates), f.config.GetTestDir())
	for i, name := range candidates {
		if i == len(candidates)-1 {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}
	}
}
