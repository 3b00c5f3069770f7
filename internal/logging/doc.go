// Package logging provides structured logging for the wifitester tool.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the tool. Because the primary interface is a full-screen
// terminal UI, logging is SILENT by default: unless a level is configured,
// all log calls hit a nop logger and produce no output that could corrupt
// the rendered screen.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: driver command lines, parsed output, message routing
//   - Info: normal operations (loads, saves, connection tests)
//   - Warn: non-fatal issues (malformed settings file, missing backend)
//   - Error: failures surfaced to the user
//
// # Configuration
//
// Set the WIFITESTER_LOG_LEVEL environment variable to enable output:
//
//	WIFITESTER_LOG_LEVEL=debug wifitester passwords
//
// The level can also come from the persisted settings file, whose values use
// the DEBUG/INFO/WARNING/ERROR spelling; InitializeFromSettings accepts both
// spellings.
//
// When enabled, logs are written to stderr in console format so they never
// interleave with UI output on stdout.
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("credentials loaded",
//	    zap.String("driver", "netsh"),
//	    zap.Int("profiles", 12),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
