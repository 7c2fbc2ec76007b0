package commands

import (
	"nrvtest/internal/config"
	"nrvtest/internal/lint"

	"github.com/spf13/cobra"
)

// LintCommand handles the lint command
type LintCommand struct {
	config  *config.Config
	checker *lint.Checker
}

// NewLintCommand creates a new LintCommand
func NewLintCommand(cfg *config.Config, checker *lint.Checker) *LintCommand {
	return &LintCommand{
		config:  cfg,
		checker: checker,
	}
}

// Execute runs the command
func (lc *LintCommand) Execute(cmd *cobra.Command, args []string) error {
	return lc.checker.Run(cmd.Context())
}
