package workspace

import (
	"fmt"
	"os"
)

// ResetDir deletes dir if it exists and recreates it empty, so a test run
// never observes stale artifacts from a previous one. The reset is
// idempotent for any prior state of the directory.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}
