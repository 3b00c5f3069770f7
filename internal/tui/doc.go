// Package tui implements the interactive dialogs as Bubble Tea models: the
// saved-passwords dialog and the settings dialog.
//
// # Concurrency Model
//
// The Bubble Tea event loop owns all model state. Anything slow (credential
// loads, connection tests) runs as a tea.Cmd in a background goroutine and
// delivers its result as a typed message; Update applies it on the loop.
// Models therefore never need locks, and no background work touches a model
// directly.
//
// Stale results are a real hazard: a refresh can be issued while a previous
// load is still in flight, and a row can be rebuilt while its connection
// test runs. Every async message carries the generation counter current when
// its work started, and Update drops messages whose generation no longer
// matches.
//
// # Themes
//
// The lipgloss palette is switchable at runtime (dark, light, system).
// Styles are constructed through functions that read the active palette, so
// a theme change in the settings dialog takes effect on the next render.
package tui
