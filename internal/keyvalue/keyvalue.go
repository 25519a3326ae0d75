// Package keyvalue provides the durable key-value storage backends the
// ledger persists its collections to. Each value is the JSON serialization
// of one collection, stored under a fixed string key.
package keyvalue

import "errors"

// ErrStorage is returned when the storage backend itself failed and no
// more useful information can be given to the caller.
var ErrStorage = errors.New("an error occurred in the storage backend during your request")

// Store is a synchronous key-value store keyed by string.
type Store interface {
	// Get returns the value for a key. The boolean reports whether the key
	// exists.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for a key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Ping reports whether the backend is usable.
	Ping() error

	// Close releases the backend's resources.
	Close() error
}
