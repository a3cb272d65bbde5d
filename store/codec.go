package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Get reads and decodes the value at key. A missing key or a value that no
// longer decodes yields the caller-supplied default instead of an error; only
// backend failures are reported.
func Get[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, nil
	}
	return v, nil
}

// Set encodes v as JSON and durably replaces the value at key.
func Set[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	return s.Set(ctx, key, raw)
}

// TxGet is Get against a transaction view.
func TxGet[T any](tx Tx, key string, def T) (T, error) {
	raw, err := tx.Get(key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, nil
	}
	return v, nil
}

// TxSet is Set against a transaction view.
func TxSet[T any](tx Tx, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	return tx.Set(key, raw)
}
