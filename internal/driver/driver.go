package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotSupported is returned by helpers when the active backend lacks the
// requested capability.
var ErrNotSupported = errors.New("operation not supported by this driver")

// Driver is the minimal contract every backend satisfies. Everything else
// is an optional capability interface probed by type assertion.
type Driver interface {
	// Name identifies the backend ("netsh", "nmcli") for logs and the UI.
	Name() string
}

// PasswordReader is implemented by backends that can dump all saved
// profiles together with their passwords in one pass.
type PasswordReader interface {
	// SavedPasswords returns profile name to password. A nil password
	// means the profile exists but has no key material (open network, or
	// the key was not readable).
	SavedPasswords(ctx context.Context) (map[string]*string, error)
}

// ProfileLister is implemented by backends that can enumerate saved profile
// names without exposing passwords.
type ProfileLister interface {
	SavedProfiles(ctx context.Context) ([]string, error)
}

// Connector is implemented by backends that can initiate a connection to a
// saved profile. The bool result reports whether the backend accepted the
// request; it does NOT mean the association completed.
type Connector interface {
	Connect(ctx context.Context, profile string) (bool, error)
}

// Connection describes the currently associated network.
type Connection struct {
	SSID      string
	Interface string
	Signal    int // percent, 0 when unknown
}

// ConnectionReporter is implemented by backends that can report the current
// association. A nil Connection with nil error means not connected.
type ConnectionReporter interface {
	CurrentConnection(ctx context.Context) (*Connection, error)
}

// Capabilities summarizes which optional interfaces a driver implements.
type Capabilities struct {
	BulkPasswords     bool
	ListProfiles      bool
	Connect           bool
	CurrentConnection bool
}

// Probe inspects d and reports its capability set. A nil driver has no
// capabilities.
func Probe(d Driver) Capabilities {
	if d == nil {
		return Capabilities{}
	}
	var c Capabilities
	_, c.BulkPasswords = d.(PasswordReader)
	_, c.ListProfiles = d.(ProfileLister)
	_, c.Connect = d.(Connector)
	_, c.CurrentConnection = d.(ConnectionReporter)
	return c
}

// String renders the capability set for logs, e.g. "passwords,profiles,connect".
func (c Capabilities) String() string {
	var parts []string
	if c.BulkPasswords {
		parts = append(parts, "passwords")
	}
	if c.ListProfiles {
		parts = append(parts, "profiles")
	}
	if c.Connect {
		parts = append(parts, "connect")
	}
	if c.CurrentConnection {
		parts = append(parts, "current")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// runnerFunc executes an external command and returns its stdout. Backends
// hold one of these instead of calling exec directly so tests can inject
// canned output.
type runnerFunc func(ctx context.Context, name string, args ...string) (string, error)

// runCommand is the production runner.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return stdout.String(), fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
	}
	return stdout.String(), nil
}

// isExitError reports whether err (possibly wrapped) is a non-zero exit from
// the external tool, as opposed to a failure to run it at all.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
