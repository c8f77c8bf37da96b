package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process DocumentStore for tests and dev mode.
// Nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.docs[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, collection string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(body))
	copy(stored, body)
	s.docs[collection] = stored
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
