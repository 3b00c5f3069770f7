package credentials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kmorris/wifitester/internal/driver"
)

func TestConnectionNoConnector(t *testing.T) {
	r := TestConnection(context.Background(), bareDriver{}, "home", 0)

	if !r.Failed() {
		t.Error("driver without Connect should fail the test")
	}
	if !strings.Contains(r.Message, "not available") {
		t.Errorf("Message = %q, should say the driver is not available", r.Message)
	}
}

func TestConnectionRejected(t *testing.T) {
	d := connectDriver{accepted: false}

	r := TestConnection(context.Background(), d, "home", 0)

	if !r.Failed() {
		t.Error("rejected connect should fail")
	}
	if r.Message != "Could not connect to 'home'" {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestConnectionFault(t *testing.T) {
	d := connectDriver{connectErr: errors.New("radio is off")}

	r := TestConnection(context.Background(), d, "home", 0)

	if !r.Failed() {
		t.Error("connect fault should fail")
	}
	if !strings.Contains(r.Message, "radio is off") {
		t.Errorf("Message = %q, should carry the fault text", r.Message)
	}
}

func TestConnectionVerified(t *testing.T) {
	d := verifyingDriver{
		connectDriver: connectDriver{accepted: true},
		current:       &driver.Connection{SSID: "home", Interface: "wlan0", Signal: 80},
	}

	r := TestConnection(context.Background(), d, "home", 0)

	if r.Outcome != OutcomeVerified {
		t.Errorf("Outcome = %v, want OutcomeVerified", r.Outcome)
	}
	if r.Message != "Successfully connected to 'home'" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Failed() {
		t.Error("verified result must not count as failed")
	}
}

func TestConnectionUnverified(t *testing.T) {
	tests := []struct {
		name string
		d    driver.Driver
	}{
		{"connected elsewhere", verifyingDriver{
			connectDriver: connectDriver{accepted: true},
			current:       &driver.Connection{SSID: "neighbor"},
		}},
		{"not connected", verifyingDriver{
			connectDriver: connectDriver{accepted: true},
		}},
		{"verification fault", verifyingDriver{
			connectDriver: connectDriver{accepted: true},
			verifyErr:     errors.New("scan busy"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TestConnection(context.Background(), tt.d, "home", 0)

			if r.Outcome != OutcomeUnverified {
				t.Errorf("Outcome = %v, want OutcomeUnverified", r.Outcome)
			}
			if r.Message != "Connection initiated but not verified" {
				t.Errorf("Message = %q", r.Message)
			}
			if r.Failed() {
				t.Error("unverified result must not count as failed")
			}
		})
	}
}

func TestConnectionSentWithoutReporter(t *testing.T) {
	d := connectDriver{accepted: true}

	r := TestConnection(context.Background(), d, "home", 0)

	if r.Outcome != OutcomeSent {
		t.Errorf("Outcome = %v, want OutcomeSent", r.Outcome)
	}
	if r.Message != "Connection command sent to 'home'" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Failed() {
		t.Error("sent result must not count as failed")
	}
}

func TestConnectionCancelledDuringSettle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := connectDriver{accepted: true}
	r := TestConnection(ctx, d, "home", SettleDelay)

	if !r.Failed() {
		t.Error("cancelled test should fail")
	}
}
