package store

import (
	"context"
	"sync"
)

// MemoryStore keeps all values in a map. It is the ephemeral backend and the
// substitute used by tests in place of a durable medium.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	hub    *hub
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		hub:    newHub(),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.values[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	s.hub.broadcast(key)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	s.hub.broadcast(key)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &memoryTx{
		base:    s.values,
		staged:  make(map[string][]byte),
		removed: make(map[string]bool),
	}
	if err := fn(view); err != nil {
		return err
	}

	touched := make([]string, 0, len(view.staged)+len(view.removed))
	for key, value := range view.staged {
		s.values[key] = value
		touched = append(touched, key)
	}
	for key := range view.removed {
		delete(s.values, key)
		touched = append(touched, key)
	}
	s.hub.broadcast(touched...)
	return nil
}

func (s *MemoryStore) Subscribe(key string) (<-chan struct{}, func()) {
	return s.hub.subscribe(key)
}

func (s *MemoryStore) Close() error {
	return nil
}

// memoryTx stages writes so a failed Update leaves the map untouched.
type memoryTx struct {
	base    map[string][]byte
	staged  map[string][]byte
	removed map[string]bool
}

func (t *memoryTx) Get(key string) ([]byte, error) {
	if t.removed[key] {
		return nil, ErrNotFound
	}
	if value, ok := t.staged[key]; ok {
		return append([]byte(nil), value...), nil
	}
	value, ok := t.base[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (t *memoryTx) Set(key string, value []byte) error {
	delete(t.removed, key)
	t.staged[key] = append([]byte(nil), value...)
	return nil
}

func (t *memoryTx) Remove(key string) error {
	delete(t.staged, key)
	t.removed[key] = true
	return nil
}
