package counter

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// memoryStore is a process-local fallback for development and test runs
// without Redis. Counters reset on restart and are not shared across
// processes, so limits hold per process only.
type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
	expiry map[string]time.Time
}

// NewMemory returns an in-process Store.
func NewMemory() Store {
	return &memoryStore{
		values: make(map[string]string),
		expiry: make(map[string]time.Time),
	}
}

// cleanup drops the key if its TTL has lapsed. Callers hold the lock.
func (s *memoryStore) cleanup(key string) {
	if exp, ok := s.expiry[key]; ok && time.Now().After(exp) {
		delete(s.values, key)
		delete(s.expiry, key)
	}
}

func (s *memoryStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	n, _ := strconv.ParseInt(s.values[key], 10, 64)
	n++
	s.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

// Expire registers the deadline even when the key has no value yet; the
// pending expiry applies if the key is set within the window.
func (s *memoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	s.expiry[key] = time.Now().Add(ttl)
	return nil
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	v, ok := s.values[key]
	if !ok {
		return "", ErrNil
	}
	return v, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	s.values[key] = value
	if ttl > 0 {
		s.expiry[key] = time.Now().Add(ttl)
	}
	return nil
}

func (s *memoryStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	delete(s.expiry, key)
	return nil
}
