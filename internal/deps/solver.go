package deps

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"nrvtest/internal/config"
)

// licenseMarker is the substring the solver client emits on licensing
// failures; it is the fallback classifier when no structured kind is set.
const licenseMarker = "License error:"

// SolverErrorKind classifies a failed solver probe
type SolverErrorKind int

const (
	// SolverErrorGeneric covers any launch failure that is not license related
	SolverErrorGeneric SolverErrorKind = iota
	// SolverErrorLicense marks licensing failures
	SolverErrorLicense
)

// SolverError is a classified solver probe failure
type SolverError struct {
	Kind SolverErrorKind
	Msg  string
}

func (e *SolverError) Error() string {
	return e.Msg
}

// ClassifySolverError returns the error's classification, reading the
// structured kind when available and falling back to substring matching on
// the message text.
func ClassifySolverError(err error) SolverErrorKind {
	var solverErr *SolverError
	if errors.As(err, &solverErr) {
		return solverErr.Kind
	}
	if strings.Contains(err.Error(), licenseMarker) {
		return SolverErrorLicense
	}
	return SolverErrorGeneric
}

// SolverClient opens and closes a session against the finite-element solver
type SolverClient interface {
	Start(ctx context.Context) error
	Close() error
}

// CommandClient probes the solver through its command-line client
type CommandClient struct {
	config *config.Config
}

// NewCommandClient creates a new CommandClient
func NewCommandClient(cfg *config.Config) *CommandClient {
	return &CommandClient{config: cfg}
}

// Start launches the solver client in version mode, which forces a license
// checkout and releases it on exit.
func (cc *CommandClient) Start(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, cc.config.SolverCommand, "-version")
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	msg := strings.TrimSpace(string(output))
	if msg == "" {
		msg = err.Error()
	}
	kind := SolverErrorGeneric
	if strings.Contains(msg, licenseMarker) {
		kind = SolverErrorLicense
	}
	return &SolverError{Kind: kind, Msg: msg}
}

// Close is a no-op for the command client: the probe process has already
// exited when Start returns.
func (cc *CommandClient) Close() error {
	return nil
}

// SolverChecker validates that a solver session can be opened and closed
type SolverChecker struct {
	client SolverClient
}

// NewSolverChecker creates a new SolverChecker
func NewSolverChecker(client SolverClient) *SolverChecker {
	return &SolverChecker{client: client}
}

// Check opens a solver session and immediately closes it, printing one
// diagnostic line. Failures are advisory and never propagate.
func (sc *SolverChecker) Check(ctx context.Context) error {
	if err := sc.client.Start(ctx); err != nil {
		switch ClassifySolverError(err) {
		case SolverErrorLicense:
			color.Yellow("COMSOL license issue, check your license server: %v", err)
		default:
			color.Red("Error launching COMSOL: %v", err)
		}
		return nil
	}
	defer sc.client.Close()

	color.Green("COMSOL is accessible")
	return nil
}
