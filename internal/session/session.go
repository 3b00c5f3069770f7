package session

import (
	"net"
	"runtime"

	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/logging"
)

// Session describes the environment the tool is running in.
type Session struct {
	OS         string
	Elevated   bool
	Interfaces []string
}

// Current inspects the running process and host.
func Current() Session {
	s := Session{
		OS:         runtime.GOOS,
		Elevated:   isElevated(),
		Interfaces: interfaceNames(),
	}
	logging.Debug("session detected",
		zap.String("os", s.OS),
		zap.Bool("elevated", s.Elevated),
		zap.Strings("interfaces", s.Interfaces),
	)
	return s
}

// PasswordsAvailable reports whether saved password dumps can be expected to
// return key material on this host.
func (s Session) PasswordsAvailable() bool {
	return s.OS == "windows" && s.Elevated
}

// Warning returns the banner text for the passwords dialog, or "" when no
// warning applies.
func (s Session) Warning() string {
	if s.PasswordsAvailable() {
		return ""
	}
	if s.OS == "windows" {
		return "Administrator rights are required to read saved passwords. Run as administrator to see them."
	}
	return "Saved passwords can only be read on Windows. Showing profile names where the system allows."
}

// interfaceNames lists the names of interfaces that are up and not loopback.
func interfaceNames() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		logging.Warn("cannot enumerate interfaces", zap.Error(err))
		return nil
	}

	var names []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		names = append(names, iface.Name)
	}
	return names
}
