// Package redis keeps parser output in Redis, so that repeated analyses of
// the same text skip the parser.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revelaction/cadete/parser"

	"github.com/go-redis/redis/v8"
)

type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewCache connects to the Redis server at url (redis://host:port/db).
// A zero ttl keeps entries forever.
func NewCache(url string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url %s: %w", url, err)
	}
	opts.MaxRetries = 6

	return &Cache{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, parser.ErrCacheMiss
	}
	return data, err
}

func (c *Cache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

var _ parser.Cache = (*Cache)(nil)
