package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/tair/storefront/internal/cart/domain"
)

// MemoryStore keeps records in process memory. Used for local development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return slices.Clone(data), nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = slices.Clone(data)
	return nil
}
