package store

import (
	"context"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Create inserts a new ticker with created_at = updated_at = now.
// The symbol is normalized before insertion. Fails with ErrInvalidInput if
// the normalized symbol is empty, ErrDuplicateSymbol if it is already taken.
// Returns the stored record, id assigned.
func (s *Store) Create(ctx context.Context, symbol, notes string) (Ticker, error) {
	t := Ticker{
		Symbol: normalizeSymbol(symbol),
		Notes:  normalizeNotes(notes),
	}
	if t.Symbol == "" {
		return Ticker{}, fmt.Errorf("create ticker: empty symbol: %w", ErrInvalidInput)
	}

	now := s.now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tickers (symbol, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`,
		t.Symbol,
		t.Notes,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Ticker{}, fmt.Errorf("create ticker %q: %w", t.Symbol, ErrDuplicateSymbol)
		}
		return Ticker{}, fmt.Errorf("create ticker: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Ticker{}, fmt.Errorf("create ticker: last insert id: %w", err)
	}
	t.ID = id

	return t, nil
}

// Update replaces symbol and notes of the ticker with the given id and
// refreshes updated_at; created_at is preserved. Fails with ErrNotFound if
// the id does not exist, ErrDuplicateSymbol if the new symbol belongs to a
// different record (updating a record to its own symbol succeeds), and
// ErrInvalidInput if the normalized symbol is empty.
func (s *Store) Update(ctx context.Context, id int64, symbol, notes string) (Ticker, error) {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return Ticker{}, fmt.Errorf("update ticker %d: empty symbol: %w", id, ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE tickers
		SET symbol = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`,
		sym,
		normalizeNotes(notes),
		s.now().UTC(),
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Ticker{}, fmt.Errorf("update ticker %d to %q: %w", id, sym, ErrDuplicateSymbol)
		}
		return Ticker{}, fmt.Errorf("update ticker: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Ticker{}, fmt.Errorf("update ticker: rows affected: %w", err)
	}
	if affected == 0 {
		return Ticker{}, fmt.Errorf("update ticker %d: %w", id, ErrNotFound)
	}

	return s.Get(ctx, id)
}

// Delete removes the ticker with the given id.
// Fails with ErrNotFound if the id does not exist; a second delete of the
// same id therefore also reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tickers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete ticker: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ticker: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete ticker %d: %w", id, ErrNotFound)
	}

	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The symbol column carries the table's only unique constraint.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
