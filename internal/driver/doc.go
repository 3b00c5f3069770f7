// Package driver abstracts the operating system's WiFi stack behind a small
// core interface plus optional capability interfaces.
//
// Backends differ widely in what they can do: netsh on Windows can dump
// saved passwords (with elevation), while nmcli on Linux can list profiles
// and drive connections but does not expose a bulk password dump. Rather
// than one fat interface full of "not supported" stubs, each optional
// operation lives in its own interface and callers probe with a type
// assertion:
//
//	if pr, ok := d.(driver.PasswordReader); ok {
//	    creds, err := pr.SavedPasswords(ctx)
//	    ...
//	}
//
// Capabilities summarizes the probe results for display and logging.
//
// All backends shell out to the platform tool through an injectable command
// runner, so tests substitute canned output instead of spawning processes.
package driver
