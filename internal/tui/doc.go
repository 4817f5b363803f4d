// Package tui implements the config sets admin panel on top of bubbletea.
//
// The panel lists config sets as cards, edits them in a modal form, asks
// for confirmation before deleting, and keeps the theme and port settings.
// All network calls go through the client services and run as tea.Cmd off
// the event loop; their results come back as messages.
package tui
