package domain

import "time"

// TestResult represents the result of executing one test script
type TestResult struct {
	Name     string        // File name of the test script
	Path     string        // Full path passed to the simulator wrapper
	Success  bool          // Whether the subprocess exited zero
	ExitCode int           // OS-level exit status
	Output   string        // Combined stdout/stderr of the subprocess
	Error    error         // Error if the subprocess could not be started
	Duration time.Duration // Time taken to execute
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	FailedTests     int     `json:"failed_tests"`
	PassedTests     int     `json:"passed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for one test run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}
