package commands

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"nrvtest/internal/cli"
	"nrvtest/internal/config"
)

// newProject lays out a temp project: a test folder with scripts and a fake
// simulator wrapper that fails for any script whose name contains "fail".
func newProject(t *testing.T, scripts ...string) *config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on windows")
	}

	tmpDir := t.TempDir()
	testDir := filepath.Join(tmpDir, "unitary_tests")
	if err := os.MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	for _, script := range scripts {
		if err := os.WriteFile(filepath.Join(testDir, script), []byte(""), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	sim := filepath.Join(tmpDir, "fake-sim")
	body := "#!/bin/sh\ncase \"$1\" in *fail*) exit 1;; esac\nexit 0\n"
	if err := os.WriteFile(sim, []byte(body), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	cfg.SimCommand = sim
	return cfg
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunCommand_Execute_AllPass(t *testing.T) {
	cfg := newProject(t, "test_001.py", "test_002.py")
	cmds := NewCommands(cfg)

	if err := cmds.Run.Execute(testCommand(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Results JSON is persisted for the faills viewer
	if _, err := os.Stat(cfg.GetResultsPath()); err != nil {
		t.Errorf("results file not written: %v", err)
	}
}

func TestRunCommand_Execute_FailurePropagatesToExitStatus(t *testing.T) {
	cfg := newProject(t, "test_001.py", "test_002_fail.py", "test_003.py")
	cmds := NewCommands(cfg)

	err := cmds.Run.Execute(testCommand(), nil)
	if err == nil {
		t.Fatal("expected error when a test fails")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRunCommand_Execute_ResetsFiguresDir(t *testing.T) {
	cfg := newProject(t, "test_001.py")
	stale := filepath.Join(cfg.GetFiguresDir(), "stale.png")
	if err := os.MkdirAll(cfg.GetFiguresDir(), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cmds := NewCommands(cfg)
	if err := cmds.Run.Execute(testCommand(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale figure survived the reset")
	}
	if _, err := os.Stat(cfg.GetFiguresDir()); err != nil {
		t.Errorf("figures dir missing after reset: %v", err)
	}
}

func TestRunCommand_Execute_NoCandidates(t *testing.T) {
	cfg := newProject(t) // empty test folder
	cmds := NewCommands(cfg)

	if err := cmds.Run.Execute(testCommand(), nil); err != nil {
		t.Errorf("empty candidate set must not be an error, got %v", err)
	}
}

func TestRootCommand_DefaultActionRunsTests(t *testing.T) {
	cfg := newProject(t, "test_001.py")

	rootCmd := &cobra.Command{Use: "nrvtest"}
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	rootCmd.SetArgs([]string{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The default action is the unit test runner: it must have produced a
	// results file and reset the figures directory.
	if _, err := os.Stat(cfg.GetResultsPath()); err != nil {
		t.Errorf("results file not written by default action: %v", err)
	}
	if _, err := os.Stat(cfg.GetFiguresDir()); err != nil {
		t.Errorf("figures dir not created by default action: %v", err)
	}
}

func TestRootCommand_UnitaryTestsFlag(t *testing.T) {
	cfg := newProject(t, "test_001.py")

	rootCmd := &cobra.Command{Use: "nrvtest"}
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	rootCmd.SetArgs([]string{"-t"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(cfg.GetResultsPath()); err != nil {
		t.Errorf("results file not written: %v", err)
	}
}
