// Package postgres adapts a single-table Postgres schema to the
// domain.Store interface, for deployments that keep the directory next to
// an existing relational database instead of Redis.
//
//	CREATE TABLE redirects (
//	    slug       TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/choraria/devfest/internal/domain"
)

type store struct {
	DB *sql.DB
}

// NewStore wraps an open database handle as a domain.Store.
func NewStore(db *sql.DB) domain.Store {
	return &store{DB: db}
}

func (s *store) GetOne(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM redirects WHERE slug = $1`
	var value []byte
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select value: %v", domain.ErrStoreUnavailable, err)
	}
	return value, nil
}

func (s *store) ListKeys(ctx context.Context) ([]string, error) {
	query := `SELECT slug FROM redirects`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select slugs: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("%w: scan slug: %v", domain.ErrStoreUnavailable, err)
		}
		keys = append(keys, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate slugs: %v", domain.ErrStoreUnavailable, err)
	}
	return keys, nil
}

// GetMany fetches the whole batch in one round trip with = ANY. Keys with
// no row come back with a nil value, matching the adapter contract.
func (s *store) GetMany(ctx context.Context, keys []string) ([]domain.KeyValue, error) {
	query := `SELECT slug, value FROM redirects WHERE slug = ANY($1)`
	rows, err := s.DB.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("%w: select batch: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	found := make(map[string][]byte, len(keys))
	for rows.Next() {
		var slug string
		var value []byte
		if err := rows.Scan(&slug, &value); err != nil {
			return nil, fmt.Errorf("%w: scan batch row: %v", domain.ErrStoreUnavailable, err)
		}
		found[slug] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate batch: %v", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.KeyValue{Key: k, Value: found[k]})
	}
	return out, nil
}

func (s *store) SetOne(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO redirects (slug, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slug) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: upsert: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
