// Package tui renders controller snapshots in the terminal.
//
// The package splits into two halves. The render half is pure: render()
// turns one controller.View into one frame of text, so frames can be
// golden-tested byte for byte. The program half owns the terminal: a
// bubbletea Model feeds key messages through keysFor() into the
// controller and redraws after every event.
//
// Styling goes through lipgloss. Under a dumb terminal profile the styles
// collapse to plain text, which keeps the golden fixtures readable.
package tui
