// Package redis adapts a Redis database to the domain.Store interface.
// This is the primary backing store: one value per slug, JSON-encoded.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/choraria/devfest/internal/domain"
)

const (
	// scanPageSize bounds one SCAN round trip; the adapter still presents a
	// single logical key slice.
	scanPageSize = 500
	// mgetChunkSize bounds one MGET round trip. At the directory's scale
	// (1-2k entries) a full fetch is 3-4 batched calls.
	mgetChunkSize = 500
	// maxConcurrentChunks caps the fan-out so a big key space cannot
	// overwhelm the connection pool.
	maxConcurrentChunks = 8
)

type store struct {
	client *redis.Client
}

// NewStore wraps an initialized go-redis client as a domain.Store.
func NewStore(client *redis.Client) domain.Store {
	return &store{client: client}
}

func (s *store) GetOne(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: redis get: %v", domain.ErrStoreUnavailable, err)
	}
	return val, nil
}

func (s *store) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		page, next, err := s.client.Scan(ctx, cursor, "*", scanPageSize).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: redis scan: %v", domain.ErrStoreUnavailable, err)
		}
		keys = append(keys, page...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func (s *store) GetMany(ctx context.Context, keys []string) ([]domain.KeyValue, error) {
	out := make([]domain.KeyValue, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)
	for start := 0; start < len(keys); start += mgetChunkSize {
		end := min(start+mgetChunkSize, len(keys))
		g.Go(func() error {
			vals, err := s.client.MGet(ctx, keys[start:end]...).Result()
			if err != nil {
				return fmt.Errorf("%w: redis mget: %v", domain.ErrStoreUnavailable, err)
			}
			for i, v := range vals {
				kv := domain.KeyValue{Key: keys[start+i]}
				if str, ok := v.(string); ok {
					kv.Value = []byte(str)
				}
				out[start+i] = kv
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) SetOne(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
