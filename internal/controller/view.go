package controller

import "tickerdeck/internal/store"

// State tags the controller's position in the navigation machine.
type State string

const (
	// StateMainMenu is the initial state: a selectable action list.
	StateMainMenu State = "main-menu"
	// StateListView shows the cached record list; any key leaves it.
	StateListView State = "list-view"
	// StateAddForm collects symbol and notes for a new ticker.
	StateAddForm State = "add-form"
	// StateEditForm collects an id, then replacement symbol and notes.
	StateEditForm State = "edit-form"
	// StateDeleteConfirm collects an id, then a y/n confirmation.
	StateDeleteConfirm State = "delete-confirm"
	// StateExited is terminal; the shell should stop reading keys.
	StateExited State = "exited"
)

// MessageKind distinguishes success notices from failures.
type MessageKind string

const (
	MessageInfo  MessageKind = "info"
	MessageError MessageKind = "error"
)

// Message is the transient status line shown in the main menu.
// The zero value means no message.
type Message struct {
	Text string
	Kind MessageKind
}

func infoMessage(text string) Message {
	return Message{Text: text, Kind: MessageInfo}
}

func errorMessage(text string) Message {
	return Message{Text: text, Kind: MessageError}
}

// Field is one render-ready form input line.
type Field struct {
	Label  string
	Value  string
	Cursor int // rune offset of the cursor within Value
	Active bool
}

// View is a render-ready snapshot of controller state. All slices are
// copies; mutating a View never affects the controller.
type View struct {
	State State

	// Main menu entries and the highlighted index (StateMainMenu).
	MenuItems []string
	MenuIndex int

	// Cached records (StateListView).
	Tickers []store.Ticker

	// Form inputs and the instruction line (form states).
	Fields []Field
	Prompt string

	// Transient status, cleared by the next key press in the main menu.
	Message Message
}
