// Package ui renders styled terminal output for the non-interactive
// commands, primarily the success and failure report boxes printed by
// "wifitester export".
//
// The interactive dialogs live in internal/tui; this package is for one-shot
// output that still deserves consistent styling and width handling.
package ui
