package execution

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"nrvtest/internal/config"
	"nrvtest/internal/domain"
)

// Runner executes a single test script through the simulator wrapper
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run invokes the simulator wrapper with the test script path as its sole
// argument and blocks until the subprocess exits. The OS-level exit status
// is the only success signal; the output is captured for reporting but
// never parsed.
func (r *Runner) Run(ctx context.Context, name string) domain.TestResult {
	path := filepath.Join(r.config.GetTestDir(), name)
	cmd := exec.CommandContext(ctx, r.config.SimCommand, path)
	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath

	start := time.Now()
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	result := domain.TestResult{
		Name:     name,
		Path:     path,
		Success:  err == nil,
		Output:   string(output),
		Error:    err,
		Duration: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		// Subprocess never started (wrapper missing, permission denied).
		result.ExitCode = -1
	}
	return result
}
