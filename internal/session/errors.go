package session

import "errors"

var (
	// ErrNotFound is returned by a Storage when no token is persisted for a key.
	ErrNotFound = errors.New("session: token not found")
	// ErrInvalidKey is returned when a browser context key cannot be used as a storage key.
	ErrInvalidKey = errors.New("session: invalid key")
)
