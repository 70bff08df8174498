package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tickerdeck/internal/controller"
)

// keysFor maps one terminal key message onto controller key events.
// Pasted text arrives as a single runes message, so the result is a slice.
// Unmapped keys (function keys, modifiers) produce nil.
func keysFor(msg tea.KeyMsg) []controller.Key {
	switch msg.String() {
	case "up":
		return []controller.Key{controller.Up}
	case "down":
		return []controller.Key{controller.Down}
	case "enter":
		return []controller.Key{controller.Enter}
	case "backspace":
		return []controller.Key{controller.Backspace}
	case "esc":
		return []controller.Key{controller.Esc}
	case "ctrl+c":
		return []controller.Key{controller.Quit}
	case " ":
		return []controller.Key{controller.Rune(' ')}
	default:
		if msg.Type != tea.KeyRunes {
			return nil
		}
		keys := make([]controller.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, controller.Rune(r))
		}
		return keys
	}
}
