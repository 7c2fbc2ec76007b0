package commands

import (
	"nrvtest/internal/config"
	"nrvtest/internal/deps"

	"github.com/spf13/cobra"
)

// DepsCommand handles the deps command
type DepsCommand struct {
	config *config.Config
	neuron *deps.NeuronChecker
	solver *deps.SolverChecker
}

// NewDepsCommand creates a new DepsCommand
func NewDepsCommand(cfg *config.Config, neuron *deps.NeuronChecker, solver *deps.SolverChecker) *DepsCommand {
	return &DepsCommand{
		config: cfg,
		neuron: neuron,
		solver: solver,
	}
}

// Execute runs both dependency checks. Each check prints its own diagnostic
// and never fails, so the command always exits zero.
func (dc *DepsCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := dc.neuron.Check(cmd.Context()); err != nil {
		return err
	}
	return dc.solver.Check(cmd.Context())
}
