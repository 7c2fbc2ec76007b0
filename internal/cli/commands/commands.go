package commands

import (
	"nrvtest/internal/cli"
	"nrvtest/internal/config"
	"nrvtest/internal/deps"
	"nrvtest/internal/discovery"
	"nrvtest/internal/execution"
	"nrvtest/internal/lint"
	"nrvtest/internal/storage"
	"nrvtest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	Deps   *DepsCommand
	Lint   *LintCommand
	List   *ListCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	batch := execution.NewBatch(runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	neuronChecker := deps.NewNeuronChecker(cfg)
	solverChecker := deps.NewSolverChecker(deps.NewCommandClient(cfg))
	lintChecker := lint.NewChecker(cfg)
	failureViewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, scanner, filter, batch, jsonStorage, formatter),
		Deps:   NewDepsCommand(cfg, neuronChecker, solverChecker),
		Lint:   NewLintCommand(cfg, lintChecker),
		List:   NewListCommand(cfg, scanner, filter, formatter),
		Faills: NewFaillsCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra. The root command keeps the
// historical mutually exclusive flags (-d, -t, -s) and defaults to the unit
// test runner when no flag is given.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		switch {
		case flags.Dependances:
			return c.Deps.Execute(cmd, args)
		case flags.Syntax:
			return c.Lint.Execute(cmd, args)
		default:
			return c.Run.Execute(cmd, args)
		}
	}
	rootCmd.Flags().BoolVarP(&flags.Dependances, "dependances", "d", false, "Check that NEURON and the FEM solver are installed and reachable")
	rootCmd.Flags().BoolVarP(&flags.UnitaryTests, "unitary-tests", "t", false, "Run the unitary test scripts (default action)")
	rootCmd.Flags().BoolVarP(&flags.Syntax, "syntax", "s", false, "Run the syntax checker and save its report")
	rootCmd.MarkFlagsMutuallyExclusive("dependances", "unitary-tests", "syntax")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the unitary test scripts",
		Long:  "Reset the figures directory, then run every test script through the simulator wrapper and aggregate results",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.TestDir, "test-dir", "T", "", "Folder holding the unitary test scripts")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter candidates by name pattern (supports wildcards, e.g. 'test_0*' or '*axon*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	rootCmd.AddCommand(runCmd)

	// Deps command
	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "Check external dependencies",
		Long:  "Check that the NEURON simulator is installed with an accepted version and that the FEM solver client is reachable",
		RunE:  c.Deps.Execute,
	}
	rootCmd.AddCommand(depsCmd)

	// Lint command
	lintCmd := &cobra.Command{
		Use:   "lint",
		Short: "Run the syntax checker",
		Long:  "Run the static-analysis tool over the toolkit package and save the report",
		RunE:  c.Lint.Execute,
	}
	rootCmd.AddCommand(lintCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List candidate test scripts",
		Long:  "Enumerate the candidate test scripts without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.TestDir, "test-dir", "T", "", "Folder holding the unitary test scripts")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter candidates by name pattern")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display the failures from the last test run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
