package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each key as a redis string. It is the networked medium a
// deployment can swap in behind the same Store contract. Values never expire;
// the ledgers own their lifecycle.
type RedisStore struct {
	client *redis.Client
	hub    *hub
}

// OpenRedis connects to redis and verifies the connection.
func OpenRedis(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	return &RedisStore{client: client, hub: newHub()}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Key: key, Err: err}
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return &PersistenceError{Op: "set", Key: key, Err: err}
	}
	s.hub.broadcast(key)
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return &PersistenceError{Op: "remove", Key: key, Err: err}
	}
	s.hub.broadcast(key)
	return nil
}

// Update stages every write and applies them in one pipelined transaction, so
// no partial fan-out becomes visible. Reads inside the transaction see the
// staged writes over the current redis state; racing external writers remain
// last-write-wins, as with every backend.
func (s *RedisStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	view := &redisTx{
		ctx:     ctx,
		store:   s,
		staged:  make(map[string][]byte),
		removed: make(map[string]bool),
	}
	if err := fn(view); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	touched := make([]string, 0, len(view.staged)+len(view.removed))
	for key, value := range view.staged {
		pipe.Set(ctx, key, value, 0)
		touched = append(touched, key)
	}
	for key := range view.removed {
		pipe.Del(ctx, key)
		touched = append(touched, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return &PersistenceError{Op: "commit", Err: err}
	}
	s.hub.broadcast(touched...)
	return nil
}

func (s *RedisStore) Subscribe(key string) (<-chan struct{}, func()) {
	return s.hub.subscribe(key)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

type redisTx struct {
	ctx     context.Context
	store   *RedisStore
	staged  map[string][]byte
	removed map[string]bool
}

func (t *redisTx) Get(key string) ([]byte, error) {
	if t.removed[key] {
		return nil, ErrNotFound
	}
	if value, ok := t.staged[key]; ok {
		return append([]byte(nil), value...), nil
	}
	return t.store.Get(t.ctx, key)
}

func (t *redisTx) Set(key string, value []byte) error {
	delete(t.removed, key)
	t.staged[key] = append([]byte(nil), value...)
	return nil
}

func (t *redisTx) Remove(key string) error {
	delete(t.staged, key)
	t.removed[key] = true
	return nil
}
