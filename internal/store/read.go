package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// List returns all tickers ordered by id ascending.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) List(ctx context.Context) ([]Ticker, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, symbol, notes, created_at, updated_at
		FROM tickers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query tickers: %w", err)
	}
	defer rows.Close()

	var tickers []Ticker
	for rows.Next() {
		t, err := scanTicker(rows)
		if err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickers: %w", err)
	}

	// Return empty slice instead of nil
	if tickers == nil {
		tickers = []Ticker{}
	}

	return tickers, nil
}

// Get retrieves a single ticker by id.
// Returns ErrNotFound if the id does not exist.
func (s *Store) Get(ctx context.Context, id int64) (Ticker, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, symbol, notes, created_at, updated_at
		FROM tickers
		WHERE id = ?
	`, id)

	t, err := scanTicker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Ticker{}, fmt.Errorf("get ticker %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Ticker{}, err
	}
	return t, nil
}

// Count returns the number of stored tickers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tickers: %w", err)
	}
	return n, nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanTicker.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicker(row rowScanner) (Ticker, error) {
	var t Ticker
	if err := row.Scan(&t.ID, &t.Symbol, &t.Notes, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticker{}, err
		}
		return Ticker{}, fmt.Errorf("scan ticker: %w", err)
	}
	return t, nil
}
