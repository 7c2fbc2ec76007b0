package lint

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"nrvtest/internal/config"
)

func writeFakeLinter(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "fake-lint")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("write linter: %v", err)
	}
	return path
}

func TestChecker_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on windows")
	}

	t.Run("report is written and overwritten", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg := config.New()
		cfg.ProjectPath = tmpDir
		cfg.LintCommand = writeFakeLinter(t, tmpDir, `echo "findings for $1 with $2"`)

		if err := NewChecker(cfg).Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.GetLintReportPath())
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}
		if !strings.Contains(string(data), "findings for nrv with --disable=C") {
			t.Errorf("unexpected report content: %s", data)
		}

		// Second invocation overwrites the previous report
		cfg.LintCommand = writeFakeLinter(t, tmpDir, `echo "fresh report"`)
		if err := NewChecker(cfg).Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, _ = os.ReadFile(cfg.GetLintReportPath())
		if !strings.Contains(string(data), "fresh report") {
			t.Errorf("report not overwritten: %s", data)
		}
	})

	t.Run("non-zero exit with findings still writes report", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg := config.New()
		cfg.ProjectPath = tmpDir
		cfg.LintCommand = writeFakeLinter(t, tmpDir, `echo "W0611 unused import"; exit 4`)

		if err := NewChecker(cfg).Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.GetLintReportPath())
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}
		if !strings.Contains(string(data), "W0611") {
			t.Errorf("unexpected report content: %s", data)
		}
	})

	t.Run("missing linter is an error", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg := config.New()
		cfg.ProjectPath = tmpDir
		cfg.LintCommand = filepath.Join(tmpDir, "no-such-linter")

		if err := NewChecker(cfg).Run(context.Background()); err == nil {
			t.Error("expected error for missing linter")
		}
	})
}
