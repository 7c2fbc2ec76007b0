package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestDir     string
	FiguresDir  string

	// Report settings
	ReportDir      string
	LintReportFile string
	ResultsFile    string

	// External commands
	SimCommand    string
	PythonCommand string
	SolverCommand string
	LintCommand   string
	LintPackage   string
	LintDisable   string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Dependances  bool
	UnitaryTests bool
	Syntax       bool
	TestDir      string
	NameFilter   string
	FailFast     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		TestDir:        DefaultTestDir,
		FiguresDir:     DefaultFiguresDir,
		ReportDir:      DefaultReportDir,
		LintReportFile: DefaultLintReportFile,
		ResultsFile:    DefaultResultsFile,
		SimCommand:     DefaultSimCommand,
		PythonCommand:  DefaultPythonCommand,
		SolverCommand:  DefaultSolverCommand,
		LintCommand:    DefaultLintCommand,
		LintPackage:    DefaultLintPackage,
		LintDisable:    DefaultLintDisable,
	}
}

// Load creates a config from defaults, a .env file (if present) and the
// process environment. Environment variables win over .env values only when
// godotenv has not already set them, which matches godotenv's own semantics.
func Load() *Config {
	cfg := New()

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	cfg.ProjectPath = envOr("NRV_PROJECT_PATH", cfg.ProjectPath)
	cfg.TestDir = envOr("NRV_TEST_DIR", cfg.TestDir)
	cfg.FiguresDir = envOr("NRV_FIGURES_DIR", cfg.FiguresDir)
	cfg.ReportDir = envOr("NRV_REPORT_DIR", cfg.ReportDir)
	cfg.LintReportFile = envOr("NRV_LINT_REPORT", cfg.LintReportFile)
	cfg.ResultsFile = envOr("NRV_RESULTS_JSON", cfg.ResultsFile)
	cfg.SimCommand = envOr("NRV_SIM_COMMAND", cfg.SimCommand)
	cfg.PythonCommand = envOr("NRV_PYTHON", cfg.PythonCommand)
	cfg.SolverCommand = envOr("NRV_SOLVER_CMD", cfg.SolverCommand)
	cfg.LintCommand = envOr("NRV_LINT_CMD", cfg.LintCommand)
	cfg.LintPackage = envOr("NRV_LINT_PKG", cfg.LintPackage)
	cfg.LintDisable = envOr("NRV_LINT_DISABLE", cfg.LintDisable)

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetTestDir returns the test folder, using the flag override if provided
func (c *Config) GetTestDir() string {
	if c.Flags.TestDir != "" {
		if filepath.IsAbs(c.Flags.TestDir) {
			return c.Flags.TestDir
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestDir)
	}
	return filepath.Join(c.ProjectPath, c.TestDir)
}

// GetFiguresDir returns the figures output folder reset before each run
func (c *Config) GetFiguresDir() string {
	if filepath.IsAbs(c.FiguresDir) {
		return c.FiguresDir
	}
	return filepath.Join(c.ProjectPath, c.FiguresDir)
}

// GetLintReportPath returns the full path of the lint report file
func (c *Config) GetLintReportPath() string {
	return filepath.Join(c.ProjectPath, c.ReportDir, c.LintReportFile)
}

// GetResultsPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
