// Package controller implements the navigation state machine behind the
// ticker TUI.
//
// The controller is pure state: it consumes discrete key events, calls the
// record store where a state demands it, and exposes render-ready view
// snapshots. It never reads the terminal and never formats output, so every
// transition is testable without a live TTY.
//
// States:
//
//	MainMenu -> ListView | AddForm | EditForm | DeleteConfirm | Exited
//	ListView -> MainMenu (any key)
//	forms    -> MainMenu (submit, cancel via Esc, or error)
//
// One keystroke is fully processed, including any store call, before the
// next is read. Store failures never propagate out of Handle; each becomes
// a transient message shown in the main menu and cleared by the next key.
package controller
