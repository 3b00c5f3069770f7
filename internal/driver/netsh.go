package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kmorris/wifitester/internal/logging"
)

// NetshDriver drives the Windows WLAN stack through "netsh wlan". It
// implements every capability: profile listing, bulk password dump (requires
// elevation for key material), connect, and current-connection reporting.
type NetshDriver struct {
	run runnerFunc
}

// NewNetshDriver returns a netsh-backed driver.
func NewNetshDriver() *NetshDriver {
	return &NetshDriver{run: runCommand}
}

// Name implements Driver.
func (d *NetshDriver) Name() string { return "netsh" }

func (d *NetshDriver) netsh(ctx context.Context, args ...string) (string, error) {
	out, err := d.run(ctx, "netsh", args...)
	logging.LogDriverCommand("netsh", args, len(out), err)
	return out, err
}

// SavedProfiles implements ProfileLister by parsing "netsh wlan show
// profiles". Profile lines look like:
//
//	All User Profile     : HomeNetwork
func (d *NetshDriver) SavedProfiles(ctx context.Context) ([]string, error) {
	out, err := d.netsh(ctx, "wlan", "show", "profiles")
	if err != nil {
		return nil, fmt.Errorf("listing wlan profiles: %w", err)
	}

	var profiles []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Profile") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[idx+1:])
		if name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles, nil
}

// SavedPasswords implements PasswordReader. It lists profiles, then queries
// each with key=clear. The "Key Content" line only appears when the process
// is elevated; without it the profile maps to a nil password.
func (d *NetshDriver) SavedPasswords(ctx context.Context) (map[string]*string, error) {
	profiles, err := d.SavedProfiles(ctx)
	if err != nil {
		return nil, err
	}

	creds := make(map[string]*string, len(profiles))
	for _, profile := range profiles {
		out, err := d.netsh(ctx, "wlan", "show", "profile", "name="+profile, "key=clear")
		if err != nil {
			// A single unreadable profile should not sink the whole dump.
			if isExitError(err) {
				creds[profile] = nil
				continue
			}
			return nil, fmt.Errorf("reading profile %q: %w", profile, err)
		}
		creds[profile] = parseKeyContent(out)
	}
	return creds, nil
}

// parseKeyContent extracts the cleartext key from "show profile ... key=clear"
// output, or nil when no key is present.
func parseKeyContent(out string) *string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Key Content") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[idx+1:])
		if key != "" {
			return &key
		}
	}
	return nil
}

// Connect implements Connector via "netsh wlan connect". netsh exits zero
// with a success phrase when the request is accepted; a refusal surfaces as
// a non-zero exit, which maps to (false, nil) rather than a fault.
func (d *NetshDriver) Connect(ctx context.Context, profile string) (bool, error) {
	out, err := d.netsh(ctx, "wlan", "connect", "name="+profile)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, fmt.Errorf("connecting to %q: %w", profile, err)
	}
	return strings.Contains(strings.ToLower(out), "success"), nil
}

// CurrentConnection implements ConnectionReporter by parsing "netsh wlan
// show interfaces". Returns nil when no interface reports a connected state.
func (d *NetshDriver) CurrentConnection(ctx context.Context) (*Connection, error) {
	out, err := d.netsh(ctx, "wlan", "show", "interfaces")
	if err != nil {
		return nil, fmt.Errorf("reading wlan interfaces: %w", err)
	}

	var conn Connection
	connected := false
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := splitInterfaceLine(line)
		if !ok {
			continue
		}
		switch key {
		case "Name":
			conn.Interface = value
		case "State":
			connected = strings.EqualFold(value, "connected")
		case "SSID":
			conn.SSID = value
		case "Signal":
			if pct, err := strconv.Atoi(strings.TrimSuffix(value, "%")); err == nil {
				conn.Signal = pct
			}
		}
	}

	if !connected || conn.SSID == "" {
		return nil, nil
	}
	return &conn, nil
}

// splitInterfaceLine splits a "    Key   : value" netsh line. The BSSID line
// contains colons in its value, so only the first colon separates.
func splitInterfaceLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}
