package lint

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"

	"nrvtest/internal/config"
)

// Checker runs the static-analysis tool over the toolkit's package and saves
// the report. Findings are never evaluated here; the report file is the only
// deliverable.
type Checker struct {
	config *config.Config
}

// NewChecker creates a new Checker
func NewChecker(cfg *config.Config) *Checker {
	return &Checker{config: cfg}
}

// Run invokes the lint command against the configured package with the
// configured rule category disabled, and redirects the combined report to
// the report file. The linter exits non-zero whenever it has findings, so a
// non-zero exit with output is not an error; only a command that produces
// nothing at all is.
func (c *Checker) Run(ctx context.Context) error {
	reportPath := c.config.GetLintReportPath()
	if err := os.MkdirAll(filepath.Dir(reportPath), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.config.LintCommand, c.config.LintPackage, "--disable="+c.config.LintDisable)
	cmd.Dir = c.config.ProjectPath
	output, err := cmd.CombinedOutput()
	if err != nil && len(output) == 0 {
		return fmt.Errorf("run %s: %w", c.config.LintCommand, err)
	}

	if err := os.WriteFile(reportPath, output, 0644); err != nil {
		return fmt.Errorf("write lint report: %w", err)
	}

	color.Green("Lint report saved to %s", reportPath)
	return nil
}
