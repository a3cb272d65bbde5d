package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		k TEXT PRIMARY KEY,
		v BLOB NOT NULL
	)
`

// SQLiteStore is the default durable backend: one key-value table in a local
// SQLite file. A single connection serializes all access, which is the
// serialized-access guarantee the ledgers rely on.
type SQLiteStore struct {
	db  *sql.DB
	hub *hub
}

// OpenSQLite opens (creating if needed) the store file at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "migrate", Err: err}
	}
	return &SQLiteStore{db: db, hub: newHub()}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT v FROM kv_entries WHERE k = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Key: key, Err: err}
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv_entries (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v",
		key, value,
	)
	if err != nil {
		return &PersistenceError{Op: "set", Key: key, Err: err}
	}
	s.hub.broadcast(key)
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE k = ?", key); err != nil {
		return &PersistenceError{Op: "remove", Key: key, Err: err}
	}
	s.hub.broadcast(key)
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "begin", Err: err}
	}
	defer sqlTx.Rollback()

	view := &sqliteTx{ctx: ctx, tx: sqlTx}
	if err := fn(view); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return &PersistenceError{Op: "commit", Err: err}
	}
	s.hub.broadcast(view.touched...)
	return nil
}

func (s *SQLiteStore) Subscribe(key string) (<-chan struct{}, func()) {
	return s.hub.subscribe(key)
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store: close failed: %w", err)
	}
	return nil
}

type sqliteTx struct {
	ctx     context.Context
	tx      *sql.Tx
	touched []string
}

func (t *sqliteTx) Get(key string) ([]byte, error) {
	var value []byte
	err := t.tx.QueryRowContext(t.ctx, "SELECT v FROM kv_entries WHERE k = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Key: key, Err: err}
	}
	return value, nil
}

func (t *sqliteTx) Set(key string, value []byte) error {
	_, err := t.tx.ExecContext(t.ctx,
		"INSERT INTO kv_entries (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v",
		key, value,
	)
	if err != nil {
		return &PersistenceError{Op: "set", Key: key, Err: err}
	}
	t.touched = append(t.touched, key)
	return nil
}

func (t *sqliteTx) Remove(key string) error {
	if _, err := t.tx.ExecContext(t.ctx, "DELETE FROM kv_entries WHERE k = ?", key); err != nil {
		return &PersistenceError{Op: "remove", Key: key, Err: err}
	}
	t.touched = append(t.touched, key)
	return nil
}
