package credentials

import (
	"context"

	"github.com/kmorris/wifitester/internal/driver"
)

// Fake drivers exercising each capability combination.

type bareDriver struct{}

func (bareDriver) Name() string { return "bare" }

type passwordDriver struct {
	bareDriver
	creds map[string]*string
	err   error
}

func (d passwordDriver) SavedPasswords(ctx context.Context) (map[string]*string, error) {
	return d.creds, d.err
}

type listDriver struct {
	bareDriver
	profiles []string
	err      error
}

func (d listDriver) SavedProfiles(ctx context.Context) ([]string, error) {
	return d.profiles, d.err
}

// connectDriver implements Connector and optionally ConnectionReporter.
type connectDriver struct {
	bareDriver
	accepted   bool
	connectErr error
}

func (d connectDriver) Connect(ctx context.Context, profile string) (bool, error) {
	return d.accepted, d.connectErr
}

type verifyingDriver struct {
	connectDriver
	current   *driver.Connection
	verifyErr error
}

func (d verifyingDriver) CurrentConnection(ctx context.Context) (*driver.Connection, error) {
	return d.current, d.verifyErr
}

func strPtr(s string) *string { return &s }
