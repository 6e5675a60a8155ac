package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sent "github.com/revelaction/cadete/sentence"

	"github.com/rs/zerolog"
	"github.com/twmb/murmur3"
)

// ErrCacheMiss is returned by a Cache when the key is not stored.
var ErrCacheMiss = errors.New("cache miss")

const keyPrefix = "cadete:doc:"

// Cache stores parser output by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Cached is a Parser that asks the Cache before calling the wrapped Parser
// and stores every fresh parse. A failed store is logged, the parse still
// succeeds.
type Cached struct {
	Parser Parser
	Cache  Cache

	logger zerolog.Logger
}

func NewCached(p Parser, c Cache, l zerolog.Logger) *Cached {
	return &Cached{Parser: p, Cache: c, logger: l}
}

// Key returns the cache key of text.
func Key(text string) string {
	hash := murmur3.New64()
	_, _ = hash.Write([]byte(text))
	return fmt.Sprintf("%s%016x", keyPrefix, hash.Sum64())
}

func (c *Cached) Parse(ctx context.Context, text string) (sent.Doc, error) {
	key := Key(text)

	data, err := c.Cache.Get(ctx, key)
	switch {
	case err == nil:
		return Decode(bytes.NewReader(data))
	case !errors.Is(err, ErrCacheMiss):
		return sent.Doc{}, fmt.Errorf("cache: %w", err)
	}

	doc, err := c.Parser.Parse(ctx, text)
	if err != nil {
		return sent.Doc{}, err
	}

	data, err = json.Marshal(doc)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Could not encode doc for the cache")
		return doc, nil
	}

	if err := c.Cache.Set(ctx, key, data); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Could not store doc in the cache")
	}

	return doc, nil
}
