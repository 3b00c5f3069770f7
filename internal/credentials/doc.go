// Package credentials holds the domain model for saved WiFi profiles: the
// credential entries themselves, fetching them through whatever capabilities
// the active driver offers, running connection tests, and exporting to text.
//
// The package is UI-free. Dialogs call into it from background commands and
// render whatever it returns; all functions taking a context are safe to run
// off the UI loop.
package credentials
