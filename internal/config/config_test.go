package config

import (
	"testing"
)

func TestConfig_GetTestDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestDir:     "unitary_tests",
				Flags:       Flags{},
			},
			expected: "unitary_tests",
		},
		{
			name: "with test dir flag",
			config: &Config{
				ProjectPath: "/project",
				TestDir:     "unitary_tests",
				Flags: Flags{
					TestDir: "other_tests",
				},
			},
			expected: "/project/other_tests",
		},
		{
			name: "absolute test dir flag",
			config: &Config{
				ProjectPath: "/project",
				TestDir:     "unitary_tests",
				Flags: Flags{
					TestDir: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestDir()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetLintReportPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"

	expected := "/project/code_review/nrv_lint.txt"
	if got := cfg.GetLintReportPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NRV_TEST_DIR", "custom_tests")
	t.Setenv("NRV_SIM_COMMAND", "nrv2calm-dev")

	cfg := Load()

	if cfg.TestDir != "custom_tests" {
		t.Errorf("expected TestDir custom_tests, got %s", cfg.TestDir)
	}
	if cfg.SimCommand != "nrv2calm-dev" {
		t.Errorf("expected SimCommand nrv2calm-dev, got %s", cfg.SimCommand)
	}
	if cfg.LintPackage != DefaultLintPackage {
		t.Errorf("expected LintPackage %s, got %s", DefaultLintPackage, cfg.LintPackage)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.TestDir != DefaultTestDir {
		t.Errorf("expected TestDir %s, got %s", DefaultTestDir, cfg.TestDir)
	}

	if cfg.SimCommand != DefaultSimCommand {
		t.Errorf("expected SimCommand %s, got %s", DefaultSimCommand, cfg.SimCommand)
	}
}
