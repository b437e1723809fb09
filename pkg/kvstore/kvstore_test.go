package kvstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok := s.Get(ctx, "missing")
	assert.False(t, ok)

	s.Set(ctx, "k", "v")
	v, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	s.Set(ctx, "k", "v2")
	v, _ = s.Get(ctx, "k")
	assert.Equal(t, "v2", v)
}

func TestMemoryStoreIncrBy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.IncrBy(ctx, "n", 10)
	s.IncrBy(ctx, "n", 5)

	v, ok := s.Get(ctx, "n")
	assert.True(t, ok)
	assert.Equal(t, "15", v)
}

func TestMemoryStoreIncrByResetsNonNumeric(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "n", "garbage")
	s.IncrBy(ctx, "n", 7)

	v, _ := s.Get(ctx, "n")
	assert.Equal(t, "7", v)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrBy(ctx, "n", 2)
		}()
	}
	wg.Wait()

	v, _ := s.Get(ctx, "n")
	assert.Equal(t, "100", v)
}
