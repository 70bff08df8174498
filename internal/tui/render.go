package tui

import (
	"fmt"
	"strings"

	"tickerdeck/internal/controller"
)

const (
	// maxListRows caps how many records one list frame shows.
	maxListRows = 20
	// maxNotesLen caps the notes column, in runes.
	maxNotesLen = 50
)

// render draws one frame for the given snapshot. The function is pure:
// identical snapshots produce identical frames.
func render(v controller.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tickerdeck"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	switch v.State {
	case controller.StateMainMenu:
		b.WriteString(renderMenu(v))
	case controller.StateListView:
		b.WriteString(renderList(v))
	case controller.StateAddForm, controller.StateEditForm, controller.StateDeleteConfirm:
		b.WriteString(renderForm(v))
	case controller.StateExited:
		b.WriteString("Goodbye.\n")
	}

	return b.String()
}

func renderMenu(v controller.View) string {
	var b strings.Builder
	for i, item := range v.MenuItems {
		if i == v.MenuIndex {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if msg := renderMessage(v.Message); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(faintStyle.Render("up/down: move  enter: select  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func renderMessage(m controller.Message) string {
	switch m.Kind {
	case controller.MessageInfo:
		return infoStyle.Render(m.Text)
	case controller.MessageError:
		return errorStyle.Render("Error: " + m.Text)
	default:
		return ""
	}
}

func renderList(v controller.View) string {
	var b strings.Builder

	if len(v.Tickers) == 0 {
		b.WriteString("No tickers yet.\n")
	} else {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%-4s %-8s %-10s %s", "ID", "SYMBOL", "ADDED", "NOTES")))
		b.WriteString("\n")

		rows := v.Tickers
		more := 0
		if len(rows) > maxListRows {
			more = len(rows) - maxListRows
			rows = rows[:maxListRows]
		}
		for _, tk := range rows {
			line := fmt.Sprintf("%-4d %-8s %-10s %s",
				tk.ID, tk.Symbol, tk.CreatedAt.Format("2006-01-02"), truncate(tk.Notes, maxNotesLen))
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteString("\n")
		}
		if more > 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("... and %d more", more)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Tickers: %d", len(v.Tickers)))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("press any key to return"))
	b.WriteString("\n")
	return b.String()
}

func renderForm(v controller.View) string {
	var b strings.Builder
	b.WriteString(v.Prompt)
	b.WriteString("\n\n")

	if len(v.Fields) > 0 {
		for _, f := range v.Fields {
			marker := "  "
			if f.Active {
				marker = "> "
			}
			line := strings.TrimRight(fmt.Sprintf("%s%s: %s", marker, f.Label, f.Value), " ")
			if f.Active {
				line += cursorStyle.Render("█")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render(formHelp(v)))
	b.WriteString("\n")
	return b.String()
}

func formHelp(v controller.View) string {
	if v.State == controller.StateDeleteConfirm && len(v.Fields) == 0 {
		return "y: delete  any other key: cancel"
	}
	return "enter: accept  esc: cancel"
}

// truncate caps s at max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
