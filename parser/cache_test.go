package parser

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sent "github.com/revelaction/cadete/sentence"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type mapCache map[string][]byte

func (m mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}

func (m mapCache) Set(ctx context.Context, key string, data []byte) error {
	m[key] = data
	return nil
}

func TestCached(t *testing.T) {
	calls := 0
	p := Func(func(ctx context.Context, text string) (sent.Doc, error) {
		calls++
		return Decode(strings.NewReader(docJSON))
	})

	cache := mapCache{}
	c := NewCached(p, cache, zerolog.Nop())

	for range 3 {
		doc, err := c.Parse(context.Background(), "He runs")
		require.NoError(t, err)
		require.Equal(t, "runs", doc.Tokens[0][1].Text)
	}

	require.Equal(t, 1, calls)
	require.Contains(t, cache, Key("He runs"))

	_, err := c.Parse(context.Background(), "He walks")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestCachedParserError(t *testing.T) {
	boom := errors.New("boom")
	p := Func(func(ctx context.Context, text string) (sent.Doc, error) {
		return sent.Doc{}, boom
	})

	cache := mapCache{}
	_, err := NewCached(p, cache, zerolog.Nop()).Parse(context.Background(), "x")
	require.ErrorIs(t, err, boom)
	require.Empty(t, cache)
}

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenCache) Set(ctx context.Context, key string, data []byte) error {
	return nil
}

func TestCachedCacheError(t *testing.T) {
	p := Static(sent.Doc{})
	_, err := NewCached(p, brokenCache{}, zerolog.Nop()).Parse(context.Background(), "x")
	require.ErrorContains(t, err, "cache: connection refused")
}

func TestKey(t *testing.T) {
	require.Equal(t, Key("The cat eats fish."), Key("The cat eats fish."))
	require.NotEqual(t, Key("The cat eats fish."), Key("The cat eats fish"))
	require.True(t, strings.HasPrefix(Key(""), keyPrefix))
	require.Len(t, Key("x"), len(keyPrefix)+16)
}

type readOnlyCache struct{}

func (readOnlyCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (readOnlyCache) Set(ctx context.Context, key string, data []byte) error {
	return errors.New("READONLY replica")
}

func TestCachedStoreErrorKeepsDoc(t *testing.T) {
	p := Func(func(ctx context.Context, text string) (sent.Doc, error) {
		return Decode(strings.NewReader(docJSON))
	})

	var logs bytes.Buffer
	c := NewCached(p, readOnlyCache{}, zerolog.New(&logs))

	doc, err := c.Parse(context.Background(), "He runs")
	require.NoError(t, err)
	require.Equal(t, "runs", doc.Tokens[0][1].Text)
	require.Contains(t, logs.String(), "READONLY replica")
}
