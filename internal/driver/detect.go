package driver

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/logging"
)

// Detect picks the backend for the current platform, or returns nil when no
// usable tool is installed. A nil driver is valid: the UI still renders,
// with an empty capability set.
func Detect() Driver {
	switch runtime.GOOS {
	case "windows":
		if _, err := exec.LookPath("netsh"); err == nil {
			logging.Info("driver detected", zap.String("driver", "netsh"))
			return NewNetshDriver()
		}
	case "linux":
		if _, err := exec.LookPath("nmcli"); err == nil {
			logging.Info("driver detected", zap.String("driver", "nmcli"))
			return NewNmcliDriver()
		}
	}
	logging.Warn("no wifi backend found", zap.String("os", runtime.GOOS))
	return nil
}
