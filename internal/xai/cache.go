package xai

import (
	"sync"
	"time"
)

// modelsTTL is how long a fetched model listing stays valid.
const modelsTTL = 5 * time.Minute

// ttlSlot is a single-entry cache: one value plus the time it was
// stored. Entries are replaced wholesale, never mutated in place.
type ttlSlot[T any] struct {
	mu       sync.Mutex
	value    T
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func newTTLSlot[T any](ttl time.Duration) *ttlSlot[T] {
	return &ttlSlot[T]{
		ttl: ttl,
		now: time.Now,
	}
}

func (s *ttlSlot[T]) get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.storedAt.IsZero() || s.now().Sub(s.storedAt) >= s.ttl {
		return zero, false
	}
	return s.value, true
}

func (s *ttlSlot[T]) put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.storedAt = s.now()
}
