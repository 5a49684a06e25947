package memory

import (
	"context"
	"sync"

	"github.com/iho/pocketbuddy/internal/usecase"
)

// KVStore implements usecase.KeyValueStore in process memory.
// Nothing survives Close; it backs tests and throwaway sessions.
type KVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKVStore creates an empty KVStore.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string][]byte)}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, usecase.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *KVStore) SetMany(_ context.Context, values map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		stored := make([]byte, len(v))
		copy(stored, v)
		s.values[k] = stored
	}
	return nil
}

func (s *KVStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string][]byte)
	return nil
}

func (s *KVStore) Close() error {
	return nil
}
