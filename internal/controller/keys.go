package controller

// KeyType identifies a logical key event delivered to the controller.
// The terminal shell maps raw key messages onto these; tests construct
// them directly.
type KeyType int

const (
	// KeyRune is a printable character; Key.Rune carries the value.
	KeyRune KeyType = iota + 1
	// KeyUp moves the menu selection up.
	KeyUp
	// KeyDown moves the menu selection down.
	KeyDown
	// KeyEnter confirms the selection or submits the active field.
	KeyEnter
	// KeyBackspace removes the last rune of the active input buffer.
	KeyBackspace
	// KeyEsc cancels the current form and returns to the main menu.
	KeyEsc
	// KeyQuit requests shutdown from any state.
	KeyQuit
)

func (t KeyType) String() string {
	switch t {
	case KeyRune:
		return "rune"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEsc:
		return "esc"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Key is one discrete input event.
type Key struct {
	Type KeyType
	Rune rune
}

func (k Key) String() string {
	if k.Type == KeyRune {
		return "rune:" + string(k.Rune)
	}
	return k.Type.String()
}

// Rune returns a printable-character key event.
func Rune(r rune) Key { return Key{Type: KeyRune, Rune: r} }

// Navigation and editing key events.
var (
	Up        = Key{Type: KeyUp}
	Down      = Key{Type: KeyDown}
	Enter     = Key{Type: KeyEnter}
	Backspace = Key{Type: KeyBackspace}
	Esc       = Key{Type: KeyEsc}
	Quit      = Key{Type: KeyQuit}
)
