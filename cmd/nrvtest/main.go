package main

import (
	"fmt"
	"os"

	"nrvtest/internal/cli"
	"nrvtest/internal/cli/commands"
	"nrvtest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "nrvtest",
		Short:   "Test orchestration for the NRV neural-simulation toolkit",
		Long:    `Orchestrates quality checks around the NRV toolkit: verifies that the NEURON simulator and the FEM solver are installed and reachable, runs the unitary test scripts through the simulator wrapper, and produces lint reports. The default action runs the unitary tests.`,
		Version: version,
	}

	// Load config from defaults, .env and environment
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
