package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is the key-value cache the read path and the chat
// read-watermarks sit on.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

// ErrCacheMiss is returned by Get when the key does not exist. The redis
// implementation translates redis.Nil into this so callers never import the
// driver.
type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

var ErrCacheMiss error = cacheMissError{}
