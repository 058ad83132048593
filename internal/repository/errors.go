package repository

import "errors"

var (
	// ErrNotFound indicates the requested card does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a card with the same ID is already stored.
	ErrConflict = errors.New("already exists")
)
