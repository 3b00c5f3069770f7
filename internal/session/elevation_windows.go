//go:build windows

package session

import "os/exec"

// isElevated reports whether the process has administrator rights.
// "net session" exits non-zero for non-elevated callers, which makes it a
// reliable probe without touching the Windows security APIs directly.
func isElevated() bool {
	return exec.Command("net", "session").Run() == nil
}
