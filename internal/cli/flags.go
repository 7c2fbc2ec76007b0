package cli

import "nrvtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Dependances  bool
	UnitaryTests bool
	Syntax       bool
	TestDir      string
	NameFilter   string
	FailFast     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Dependances:  f.Dependances,
		UnitaryTests: f.UnitaryTests,
		Syntax:       f.Syntax,
		TestDir:      f.TestDir,
		NameFilter:   f.NameFilter,
		FailFast:     f.FailFast,
	}
}
