package kvstore

import (
	"context"
	"strconv"
	"sync"
)

// MemoryStore keeps entries in process memory. It backs single-node
// deployments without redis and serves as the store fake in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *MemoryStore) IncrBy(ctx context.Context, key string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, _ := strconv.ParseInt(s.entries[key], 10, 64)
	s.entries[key] = strconv.FormatInt(current+delta, 10)
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
