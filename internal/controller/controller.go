package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"tickerdeck/internal/store"
)

// Store is the record access the controller needs.
type Store interface {
	Create(ctx context.Context, symbol, notes string) (store.Ticker, error)
	List(ctx context.Context) ([]store.Ticker, error)
	Get(ctx context.Context, id int64) (store.Ticker, error)
	Update(ctx context.Context, id int64, symbol, notes string) (store.Ticker, error)
	Delete(ctx context.Context, id int64) error
}

var _ Store = (*store.Store)(nil)

// Main menu entries, in display order.
var menuItems = []string{
	"View All Tickers",
	"Add New Ticker",
	"Edit Ticker",
	"Delete Ticker",
	"Exit",
}

const (
	menuView = iota
	menuAdd
	menuEdit
	menuDelete
	menuExit
)

// stage refines the edit and delete states, which both open with an id
// prompt before their real work.
type stage int

const (
	stageNone stage = iota
	stageEnterID
	stageFields
	stageConfirm
)

// Controller interprets key events against the current state, producing
// store calls and view-state updates. One key is fully processed,
// including any store call, before the next is read.
//
// The controller holds only transient view state: the selected menu index,
// the cached list, the current form buffers, and the last message. The
// store remains the single source of truth for records.
type Controller struct {
	store    Store
	state    State
	stage    stage
	menuIdx  int
	tickers  []store.Ticker
	form     form
	targetID int64
	message  Message
}

// New creates a controller in the main menu, bound to the given store.
func New(st Store) *Controller {
	return &Controller{store: st, state: StateMainMenu}
}

// Done reports whether the controller reached its terminal state.
func (c *Controller) Done() bool { return c.state == StateExited }

// Handle processes one key event. Store failures never escape: each one
// is converted into the transient message at the call site.
func (c *Controller) Handle(ctx context.Context, k Key) {
	if c.state == StateExited {
		return
	}
	if k.Type == KeyQuit {
		c.clearForm()
		c.state = StateExited
		return
	}

	before := c.state
	switch c.state {
	case StateMainMenu:
		c.handleMainMenu(ctx, k)
	case StateListView:
		c.handleListView()
	case StateAddForm:
		c.handleAddForm(ctx, k)
	case StateEditForm:
		c.handleEditForm(ctx, k)
	case StateDeleteConfirm:
		c.handleDeleteConfirm(ctx, k)
	}

	slog.Debug("key processed", "key", k.String(), "from", before, "to", c.state)
}

// View returns a render-ready snapshot of the current state.
func (c *Controller) View() View {
	v := View{
		State:   c.state,
		Message: c.message,
	}

	switch c.state {
	case StateMainMenu:
		v.MenuItems = append([]string(nil), menuItems...)
		v.MenuIndex = c.menuIdx
	case StateListView:
		v.Tickers = append([]store.Ticker(nil), c.tickers...)
	case StateAddForm, StateEditForm, StateDeleteConfirm:
		v.Fields = c.form.snapshot()
		v.Prompt = c.prompt()
	}

	return v
}

func (c *Controller) handleMainMenu(ctx context.Context, k Key) {
	// The transient message survives exactly until the next key press.
	c.message = Message{}

	switch k.Type {
	case KeyUp:
		c.menuIdx = (c.menuIdx + len(menuItems) - 1) % len(menuItems)
	case KeyDown:
		c.menuIdx = (c.menuIdx + 1) % len(menuItems)
	case KeyEnter:
		c.openSelection(ctx)
	case KeyRune:
		if k.Rune == 'q' || k.Rune == 'Q' {
			c.state = StateExited
		}
	}
}

func (c *Controller) openSelection(ctx context.Context) {
	switch c.menuIdx {
	case menuView:
		c.enterListView(ctx)
	case menuAdd:
		c.state = StateAddForm
		c.form = newForm(newField("Symbol", ""), newField("Notes", ""))
	case menuEdit:
		c.state = StateEditForm
		c.stage = stageEnterID
		c.form = newForm(newField("ID", ""))
	case menuDelete:
		c.state = StateDeleteConfirm
		c.stage = stageEnterID
		c.form = newForm(newField("ID", ""))
	case menuExit:
		c.state = StateExited
	}
}

func (c *Controller) enterListView(ctx context.Context) {
	tickers, err := c.store.List(ctx)
	if err != nil {
		slog.Warn("list failed", "err", err)
		c.message = messageForError(err)
		return
	}
	c.tickers = tickers
	c.state = StateListView
}

// handleListView leaves the list on any key and drops the cache with it.
func (c *Controller) handleListView() {
	c.tickers = nil
	c.state = StateMainMenu
}

func (c *Controller) handleAddForm(ctx context.Context, k Key) {
	switch k.Type {
	case KeyEsc:
		c.clearForm()
		c.state = StateMainMenu
	case KeyRune:
		c.form.insert(k.Rune)
	case KeyBackspace:
		c.form.backspace()
	case KeyEnter:
		if !c.form.lastActive() {
			// Symbol must be non-blank before moving on to notes.
			if c.form.activeBlank() {
				return
			}
			c.form.advance()
			return
		}
		c.submitAdd(ctx)
	}
}

func (c *Controller) submitAdd(ctx context.Context) {
	symbol, notes := c.form.value(0), c.form.value(1)
	c.clearForm()
	c.state = StateMainMenu

	tk, err := c.store.Create(ctx, symbol, notes)
	if err != nil {
		slog.Warn("create failed", "symbol", symbol, "err", err)
		c.message = messageForError(err)
		return
	}
	slog.Info("ticker created", "id", tk.ID, "symbol", tk.Symbol)
	c.message = infoMessage(fmt.Sprintf("Ticker %q added.", tk.Symbol))
}

func (c *Controller) handleEditForm(ctx context.Context, k Key) {
	if c.stage == stageEnterID {
		c.handleIDEntry(ctx, k, c.beginEditFields)
		return
	}

	// Same editing behavior as the add form, ending in an update.
	switch k.Type {
	case KeyEsc:
		c.clearForm()
		c.state = StateMainMenu
	case KeyRune:
		c.form.insert(k.Rune)
	case KeyBackspace:
		c.form.backspace()
	case KeyEnter:
		if !c.form.lastActive() {
			if c.form.activeBlank() {
				return
			}
			c.form.advance()
			return
		}
		c.submitEdit(ctx)
	}
}

// beginEditFields probes the id and pre-fills the symbol/notes fields from
// the existing record.
func (c *Controller) beginEditFields(ctx context.Context, id int64) {
	tk, err := c.store.Get(ctx, id)
	if err != nil {
		c.clearForm()
		c.state = StateMainMenu
		if errors.Is(err, store.ErrNotFound) {
			c.message = errorMessage(fmt.Sprintf("Ticker with id %d not found.", id))
			return
		}
		slog.Warn("lookup failed", "id", id, "err", err)
		c.message = messageForError(err)
		return
	}

	c.targetID = id
	c.stage = stageFields
	c.form = newForm(newField("Symbol", tk.Symbol), newField("Notes", tk.Notes))
}

func (c *Controller) submitEdit(ctx context.Context) {
	id := c.targetID
	symbol, notes := c.form.value(0), c.form.value(1)
	c.clearForm()
	c.state = StateMainMenu

	tk, err := c.store.Update(ctx, id, symbol, notes)
	if err != nil {
		slog.Warn("update failed", "id", id, "err", err)
		c.message = messageForError(err)
		return
	}
	slog.Info("ticker updated", "id", tk.ID, "symbol", tk.Symbol)
	c.message = infoMessage(fmt.Sprintf("Ticker %q updated.", tk.Symbol))
}

func (c *Controller) handleDeleteConfirm(ctx context.Context, k Key) {
	if c.stage == stageEnterID {
		c.handleIDEntry(ctx, k, c.beginDeleteConfirm)
		return
	}

	// y confirms; any other key cancels.
	if k.Type == KeyRune && (k.Rune == 'y' || k.Rune == 'Y') {
		c.confirmDelete(ctx)
		return
	}
	c.clearForm()
	c.state = StateMainMenu
	c.message = infoMessage("Deletion cancelled.")
}

func (c *Controller) beginDeleteConfirm(_ context.Context, id int64) {
	c.targetID = id
	c.stage = stageConfirm
	c.form = form{}
}

func (c *Controller) confirmDelete(ctx context.Context) {
	id := c.targetID
	c.clearForm()
	c.state = StateMainMenu

	if err := c.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.message = errorMessage(fmt.Sprintf("Ticker with id %d not found.", id))
			return
		}
		slog.Warn("delete failed", "id", id, "err", err)
		c.message = messageForError(err)
		return
	}
	slog.Info("ticker deleted", "id", id)
	c.message = infoMessage("Ticker deleted.")
}

// handleIDEntry processes keys for an id prompt. onParsed runs with the
// parsed id; a parse failure returns to the main menu with an error.
func (c *Controller) handleIDEntry(ctx context.Context, k Key, onParsed func(context.Context, int64)) {
	switch k.Type {
	case KeyEsc:
		c.clearForm()
		c.state = StateMainMenu
	case KeyRune:
		c.form.insert(k.Rune)
	case KeyBackspace:
		c.form.backspace()
	case KeyEnter:
		raw := strings.TrimSpace(c.form.value(0))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.clearForm()
			c.state = StateMainMenu
			c.message = errorMessage(fmt.Sprintf("Invalid id %q.", raw))
			return
		}
		onParsed(ctx, id)
	}
}

// clearForm drops all form state. Called on cancel and after every
// submission; partial input never survives a state change.
func (c *Controller) clearForm() {
	c.form = form{}
	c.stage = stageNone
	c.targetID = 0
}

func (c *Controller) prompt() string {
	switch c.state {
	case StateAddForm:
		return "New ticker"
	case StateEditForm:
		if c.stage == stageEnterID {
			return "Edit which ticker?"
		}
		return fmt.Sprintf("Editing ticker %d", c.targetID)
	case StateDeleteConfirm:
		if c.stage == stageEnterID {
			return "Delete which ticker?"
		}
		return fmt.Sprintf("Delete ticker %d? (y/n)", c.targetID)
	}
	return ""
}

// messageForError converts a store failure into the transient message shown
// in the main menu. Expected failures map to fixed texts; anything else
// surfaces the underlying error.
func messageForError(err error) Message {
	switch {
	case errors.Is(err, store.ErrDuplicateSymbol):
		return errorMessage("Symbol already exists.")
	case errors.Is(err, store.ErrInvalidInput):
		return errorMessage("Symbol is required.")
	case errors.Is(err, store.ErrNotFound):
		return errorMessage("Ticker not found.")
	default:
		return errorMessage(fmt.Sprintf("Storage error: %v.", err))
	}
}
