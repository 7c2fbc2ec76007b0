package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestDir is the folder holding the unitary test scripts
	DefaultTestDir = "unitary_tests"
	// DefaultFiguresDir is the output folder tests write their figures into
	DefaultFiguresDir = "unitary_tests/figures"
	// DefaultReportDir is the folder lint reports and run results go to
	DefaultReportDir = "code_review"
	// DefaultLintReportFile is the lint report file name
	DefaultLintReportFile = "nrv_lint.txt"
	// DefaultResultsFile is the JSON file holding the last run's results
	DefaultResultsFile = "test-results.json"
	// DefaultSimCommand is the simulator wrapper each test script runs through
	DefaultSimCommand = "nrv2calm"
	// DefaultPythonCommand is the interpreter used to probe for NEURON
	DefaultPythonCommand = "python3"
	// DefaultSolverCommand is the finite-element solver client binary
	DefaultSolverCommand = "comsolbatch"
	// DefaultLintCommand is the static-analysis tool
	DefaultLintCommand = "pylint"
	// DefaultLintPackage is the package the lint command is pointed at
	DefaultLintPackage = "nrv"
	// DefaultLintDisable is the rule category passed to --disable
	DefaultLintDisable = "C"
)
