package kvstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and as a degraded fallback
// when Redis is unavailable. Expirations are honoured lazily on read.
type MemoryStore struct {
	mutex  sync.RWMutex
	values map[string]memoryValue
}

type memoryValue struct {
	value     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: map[string]memoryValue{},
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	entry, exists := s.values[key]
	s.mutex.RUnlock()

	if !exists {
		return "", ErrNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.values, key)
		s.mutex.Unlock()

		return "", ErrNotFound
	}

	return entry.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	entry := memoryValue{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}

	s.mutex.Lock()
	s.values[key] = entry
	s.mutex.Unlock()

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	delete(s.values, key)
	s.mutex.Unlock()

	return nil
}
