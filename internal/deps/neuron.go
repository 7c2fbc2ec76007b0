package deps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"

	"nrvtest/internal/config"
)

// minVersionScore is the minimum accepted NEURON version encoded as
// major*10 + minor, i.e. 77 for version 7.7.
const minVersionScore = 77

// VersionVerdict is the outcome of evaluating an installed NEURON version
type VersionVerdict struct {
	Version *semver.Version
	Score   int
	OK      bool
}

// NeuronChecker probes for an installed NEURON simulator and validates its
// version against the toolkit's minimum.
type NeuronChecker struct {
	config *config.Config

	// probeVersion is swappable for tests; the default asks the python
	// interpreter to import neuron and print its version.
	probeVersion func(ctx context.Context) (string, error)
}

// NewNeuronChecker creates a new NeuronChecker
func NewNeuronChecker(cfg *config.Config) *NeuronChecker {
	nc := &NeuronChecker{config: cfg}
	nc.probeVersion = nc.importVersion
	return nc
}

// Check probes for NEURON and prints a diagnostic line. Every failure is
// advisory: the checker always returns nil so dependency problems never
// change the process exit status.
func (nc *NeuronChecker) Check(ctx context.Context) error {
	raw, err := nc.probeVersion(ctx)
	if err != nil {
		color.Yellow("NEURON is not installed, please install it to use nrv (see https://www.neuron.yale.edu)")
		return nil
	}

	verdict, err := EvaluateVersion(raw)
	if err != nil {
		color.Yellow("NEURON reported an unreadable version %q: %v", raw, err)
		return nil
	}

	if !verdict.OK {
		color.Yellow("NEURON %s is outdated, please consider upgrading to 7.7 or newer", verdict.Version)
		return nil
	}
	color.Green("NEURON %s is installed", verdict.Version)
	return nil
}

// EvaluateVersion parses a NEURON version string of the form
// "<major>.<minor>..." and scores it as major*10 + minor against the
// minimum threshold.
func EvaluateVersion(raw string) (VersionVerdict, error) {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return VersionVerdict{}, fmt.Errorf("parse version %q: %w", raw, err)
	}
	score := int(v.Major())*10 + int(v.Minor())
	return VersionVerdict{
		Version: v,
		Score:   score,
		OK:      score >= minVersionScore,
	}, nil
}

// importVersion asks the configured python interpreter to import neuron and
// print its version. NEURON prints a banner on import, so only the last
// non-empty output line is treated as the version.
func (nc *NeuronChecker) importVersion(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, nc.config.PythonCommand, "-c", "import neuron; print(neuron.__version__)")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("import neuron: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line, nil
		}
	}
	return "", fmt.Errorf("import neuron: empty version output")
}
