package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kmorris/wifitester/internal/logging"
)

// NmcliDriver drives NetworkManager through "nmcli" on Linux. It implements
// profile listing, connect, and current-connection reporting. It deliberately
// does NOT implement PasswordReader: NetworkManager has no bulk cleartext key
// dump short of reading system-connections files directly.
type NmcliDriver struct {
	run runnerFunc
}

// NewNmcliDriver returns an nmcli-backed driver.
func NewNmcliDriver() *NmcliDriver {
	return &NmcliDriver{run: runCommand}
}

// Name implements Driver.
func (d *NmcliDriver) Name() string { return "nmcli" }

func (d *NmcliDriver) nmcli(ctx context.Context, args ...string) (string, error) {
	out, err := d.run(ctx, "nmcli", args...)
	logging.LogDriverCommand("nmcli", args, len(out), err)
	return out, err
}

// SavedProfiles implements ProfileLister. Terse mode emits one
// "NAME:TYPE" line per connection; only 802-11-wireless profiles count.
func (d *NmcliDriver) SavedProfiles(ctx context.Context) ([]string, error) {
	out, err := d.nmcli(ctx, "-t", "-f", "NAME,TYPE", "connection", "show")
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	var profiles []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := splitTerse(line)
		if len(fields) < 2 {
			continue
		}
		if strings.Contains(fields[1], "wireless") && fields[0] != "" {
			profiles = append(profiles, fields[0])
		}
	}
	return profiles, nil
}

// Connect implements Connector via "nmcli connection up". A non-zero exit
// means NetworkManager rejected or failed the activation, which maps to
// (false, nil); only a failure to run nmcli at all is a fault.
func (d *NmcliDriver) Connect(ctx context.Context, profile string) (bool, error) {
	out, err := d.nmcli(ctx, "connection", "up", "id", profile)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, fmt.Errorf("activating connection %q: %w", profile, err)
	}
	return strings.Contains(strings.ToLower(out), "successfully activated"), nil
}

// CurrentConnection implements ConnectionReporter by parsing
// "nmcli -t -f ACTIVE,SSID,SIGNAL,DEVICE device wifi list", which emits one
// "yes|no:SSID:SIGNAL:DEVICE" line per visible access point.
func (d *NmcliDriver) CurrentConnection(ctx context.Context) (*Connection, error) {
	out, err := d.nmcli(ctx, "-t", "-f", "ACTIVE,SSID,SIGNAL,DEVICE", "device", "wifi", "list")
	if err != nil {
		return nil, fmt.Errorf("reading wifi list: %w", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := splitTerse(line)
		if len(fields) < 4 || fields[0] != "yes" {
			continue
		}
		conn := &Connection{
			SSID:      fields[1],
			Interface: fields[3],
		}
		if pct, err := strconv.Atoi(fields[2]); err == nil {
			conn.Signal = pct
		}
		return conn, nil
	}
	return nil, nil
}

// splitTerse splits an nmcli terse-mode line on unescaped colons. Terse mode
// escapes literal ':' and '\' in values with a backslash.
func splitTerse(line string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
