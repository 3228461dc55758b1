package cache

import (
	"context"
	"time"
)

// RequestIDStore keeps idempotency records in the cache.
type RequestIDStore struct {
	cache Cache
}

func NewRequestIDStore(c Cache) *RequestIDStore {
	return &RequestIDStore{cache: c}
}

func (s *RequestIDStore) Store(ctx context.Context, requestID string, response []byte, ttl time.Duration) error {
	return s.cache.Set(ctx, requestID, response, ttl)
}

func (s *RequestIDStore) Get(ctx context.Context, requestID string) ([]byte, error) {
	return s.cache.Get(ctx, requestID)
}

func (s *RequestIDStore) Exists(ctx context.Context, requestID string) (bool, error) {
	return s.cache.Exists(ctx, requestID)
}
