// Package store provides SQLite-backed durable storage for ticker records.
//
// The store owns the persisted set of records and enforces the data
// contract: symbol uniqueness on the normalized form (trimmed, NFC, upper
// case), monotonic ids that are never reused (AUTOINCREMENT), and
// updated_at >= created_at. Each operation executes a single SQL statement
// on a connection scoped to the call, so it either fully applies or leaves
// no visible effect.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - SetMaxOpenConns(1): single writer, serial operations
//
// Timestamps come from the store's clock (see WithNow) in UTC and are bound
// as time.Time values; the driver handles formatting.
package store
