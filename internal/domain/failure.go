package domain

// TestFailure represents a failed test script
type TestFailure struct {
	TestName        string  `json:"test_name"`
	FilePath        string  `json:"file_path"`
	ExitCode        int     `json:"exit_code"`
	DurationSeconds float64 `json:"duration_seconds"`
	Output          string  `json:"output"`
	Resolved        bool    `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
