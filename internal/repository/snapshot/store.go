// Package snapshot adapts an exported JSON snapshot file to the
// domain.Store interface. The directory ships such a snapshot for local
// development and as a static fallback when no live store is configured.
// The adapter is read-only: SetOne always fails.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/choraria/devfest/internal/domain"
)

type store struct {
	path string
}

// NewStore serves the JSON array at path as a key-value store keyed by each
// record's slug. The file is re-read per call so edits show up without a
// restart.
func NewStore(path string) domain.Store {
	return &store{path: path}
}

// slugOnly peeks at a record's identity without committing to a full parse;
// tolerant parsing stays the bulk engine's job.
type slugOnly struct {
	Slug string `json:"slug"`
}

func (s *store) load() ([]domain.KeyValue, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read snapshot %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	pairs := make([]domain.KeyValue, 0, len(records))
	for _, rec := range records {
		var id slugOnly
		if err := json.Unmarshal(rec, &id); err != nil || id.Slug == "" {
			// A record without a slug has no key to be addressed under.
			continue
		}
		pairs = append(pairs, domain.KeyValue{Key: id.Slug, Value: rec})
	}
	return pairs, nil
}

func (s *store) GetOne(ctx context.Context, key string) ([]byte, error) {
	pairs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, kv := range pairs {
		if kv.Key == key {
			return kv.Value, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *store) ListKeys(ctx context.Context) ([]string, error) {
	pairs, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		keys = append(keys, kv.Key)
	}
	return keys, nil
}

func (s *store) GetMany(ctx context.Context, keys []string) ([]domain.KeyValue, error) {
	pairs, err := s.load()
	if err != nil {
		return nil, err
	}
	byKey := make(map[string][]byte, len(pairs))
	for _, kv := range pairs {
		byKey[kv.Key] = kv.Value
	}
	out := make([]domain.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.KeyValue{Key: k, Value: byKey[k]})
	}
	return out, nil
}

func (s *store) SetOne(ctx context.Context, key string, value []byte) error {
	return fmt.Errorf("%w: snapshot store is read-only", domain.ErrStoreUnavailable)
}
