package store

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Ticker is one tracked stock symbol with free-text notes.
// ID is assigned by the store on creation and immutable thereafter.
type Ticker struct {
	ID        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// normalizeSymbol maps raw symbol input to its stored form: surrounding
// whitespace trimmed, Unicode NFC, upper case. Uniqueness is enforced on
// this form, so "msft" and " MSFT " name the same record.
func normalizeSymbol(s string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(s)))
}

// normalizeNotes trims surrounding whitespace and applies NFC.
func normalizeNotes(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
