// Package session captures the runtime environment the dialogs run in: the
// operating system, whether the process is elevated, and which network
// interfaces exist.
//
// Saved password dumps only work on Windows with administrator rights, so
// the passwords dialog consults the session to decide whether to show a
// warning banner. The banner is informational only; whatever capabilities
// the active driver does have keep working.
package session
