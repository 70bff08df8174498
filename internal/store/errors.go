package store

import "errors"

// Sentinel errors returned by Store operations. Callers classify failures
// with errors.Is; driver error types never escape this package.
var (
	// ErrInvalidInput indicates a required field was empty after
	// normalization.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateSymbol indicates a create or update would violate
	// symbol uniqueness.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrNotFound indicates the referenced id does not exist.
	ErrNotFound = errors.New("ticker not found")

	// ErrStorageUnavailable indicates the database could not be opened or
	// initialized. Fatal at startup; no operation returns it afterwards.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
