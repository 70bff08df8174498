package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tickerdeck/internal/testutil"
)

// testEpoch is the instant test clocks start at.
var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// createTestStore creates a store backed by a fresh temp-dir database with a
// deterministic stepping clock, so every operation sees a strictly later
// timestamp than the one before.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	clk := testutil.NewClock(testEpoch, time.Second)
	s, err := Open(path, WithNow(clk.Now))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCreate inserts a ticker or fails the test.
func mustCreate(t *testing.T, s *Store, symbol, notes string) Ticker {
	t.Helper()
	tk, err := s.Create(context.Background(), symbol, notes)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", symbol, err)
	}
	return tk
}

// mustList returns all tickers or fails the test.
func mustList(t *testing.T, s *Store) []Ticker {
	t.Helper()
	tickers, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	return tickers
}
