package discovery

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Scanner lists candidate test scripts in the unitary test folder
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the names of all candidate test scripts in dir, in ascending
// lexicographic order. A candidate is any entry whose name contains ".py".
func (s *Scanner) Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("test folder does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read test folder: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), ".py") {
			candidates = append(candidates, entry.Name())
		}
	}

	sort.Strings(candidates)
	return candidates, nil
}
