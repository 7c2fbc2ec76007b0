package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters candidate names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters candidates by name pattern using wildcard matching.
// Supports patterns like "test_0*.py" or "*axon*"; a pattern without
// wildcards is a simple substring match.
func (f *Filter) FilterByName(candidates []string, pattern string) []string {
	if pattern == "" {
		return candidates
	}

	var filtered []string
	for _, name := range candidates {
		if matchesPattern(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func matchesPattern(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to a substring match over the non-wildcard parts, so
	// "*axon*test*" style patterns behave the way users expect.
	parts := strings.Split(pattern, "*")
	var hasNonEmpty bool
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
