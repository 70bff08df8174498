package controller

import "strings"

// field is one mutable input line of a form. Editing is append-at-end:
// runes are inserted at the tail and backspace removes the tail.
type field struct {
	label string
	runes []rune
}

func newField(label, value string) field {
	return field{label: label, runes: []rune(value)}
}

func (f *field) insert(r rune) { f.runes = append(f.runes, r) }

func (f *field) backspace() {
	if n := len(f.runes); n > 0 {
		f.runes = f.runes[:n-1]
	}
}

func (f *field) value() string { return string(f.runes) }

func (f *field) blank() bool { return strings.TrimSpace(f.value()) == "" }

// form is the mutable input state of the add/edit/delete flows.
// active indexes the field currently receiving keystrokes.
type form struct {
	fields []field
	active int
}

func newForm(fields ...field) form { return form{fields: fields} }

func (m *form) insert(r rune) { m.fields[m.active].insert(r) }

func (m *form) backspace() { m.fields[m.active].backspace() }

func (m *form) activeBlank() bool { return m.fields[m.active].blank() }

// lastActive reports whether the active field is the final one, meaning
// Enter submits instead of advancing.
func (m *form) lastActive() bool { return m.active == len(m.fields)-1 }

func (m *form) advance() {
	if !m.lastActive() {
		m.active++
	}
}

func (m *form) value(i int) string { return m.fields[i].value() }

// snapshot returns render-ready copies of the fields.
func (m *form) snapshot() []Field {
	out := make([]Field, len(m.fields))
	for i, f := range m.fields {
		out[i] = Field{
			Label:  f.label,
			Value:  f.value(),
			Cursor: len(f.runes),
			Active: i == m.active,
		}
	}
	return out
}
