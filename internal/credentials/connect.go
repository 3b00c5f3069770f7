package credentials

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/driver"
	"github.com/kmorris/wifitester/internal/logging"
)

// SettleDelay is how long TestConnection waits after a successful connect
// before verifying, giving the association time to complete.
const SettleDelay = 2 * time.Second

// Outcome classifies a connection test result. Only OutcomeFailed renders
// as a failure; an unverified or merely-sent connect still counts as a
// successful test.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeVerified
	OutcomeUnverified
	OutcomeSent
)

// Result is the outcome of one connection test.
type Result struct {
	Outcome Outcome
	Message string
}

// Failed reports whether the test should render as a failure.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// TestConnection asks the driver to connect to the named profile and, where
// the backend allows, verifies the resulting association. settle is the
// wait between connect and verify; pass SettleDelay outside tests. Faults
// never escape as errors; they come back as a failed Result so the caller
// can render them directly.
func TestConnection(ctx context.Context, d driver.Driver, profile string, settle time.Duration) Result {
	c, ok := d.(driver.Connector)
	if !ok {
		return Result{
			Outcome: OutcomeFailed,
			Message: "Driver not available for connection test",
		}
	}

	accepted, err := c.Connect(ctx, profile)
	if err != nil {
		logging.Warn("connection test fault",
			zap.String("profile", profile),
			zap.Error(err),
		)
		return Result{Outcome: OutcomeFailed, Message: fmt.Sprintf("Error: %v", err)}
	}
	if !accepted {
		return Result{
			Outcome: OutcomeFailed,
			Message: fmt.Sprintf("Could not connect to '%s'", profile),
		}
	}

	// Give the association time to establish before verifying.
	select {
	case <-time.After(settle):
	case <-ctx.Done():
		return Result{Outcome: OutcomeFailed, Message: fmt.Sprintf("Error: %v", ctx.Err())}
	}

	rep, ok := d.(driver.ConnectionReporter)
	if !ok {
		return Result{
			Outcome: OutcomeSent,
			Message: fmt.Sprintf("Connection command sent to '%s'", profile),
		}
	}

	current, err := rep.CurrentConnection(ctx)
	if err != nil {
		logging.Warn("connection verification fault",
			zap.String("profile", profile),
			zap.Error(err),
		)
		return Result{Outcome: OutcomeUnverified, Message: "Connection initiated but not verified"}
	}
	if current != nil && current.SSID == profile {
		return Result{
			Outcome: OutcomeVerified,
			Message: fmt.Sprintf("Successfully connected to '%s'", profile),
		}
	}
	return Result{Outcome: OutcomeUnverified, Message: "Connection initiated but not verified"}
}
