// Package store provides the durable key-value medium underlying all
// craftly ledgers. Values are opaque JSON blobs; every write replaces the
// whole value under the backend's serialized-access guarantee. Writers in
// separate processes racing on one key are last-write-wins.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is the persistent key-value medium.
type Store interface {
	// Get returns the raw value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set durably replaces the value for key and broadcasts a change
	// signal for it before returning.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key and broadcasts a change signal for it.
	// Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Update runs fn inside a transaction. Either every write made through
	// the Tx becomes visible, or none does. Change signals for the touched
	// keys fire only after a successful commit.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// Subscribe registers interest in a key. The returned channel receives
	// a payload-free signal after the key changes; signals are coalesced,
	// so consumers must re-read the key. The cancel func releases the
	// subscription.
	Subscribe(key string) (<-chan struct{}, func())

	Close() error
}

// Tx is the view of a store inside an Update transaction.
type Tx interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// PersistenceError reports a store read or write failure. Ledger operations
// that hit one are rejected with no partial state visible.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is (or wraps) a PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
