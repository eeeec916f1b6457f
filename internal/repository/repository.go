// Package repository selects and constructs the configured store adapter.
package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/choraria/devfest/config"
	"github.com/choraria/devfest/internal/domain"
	"github.com/choraria/devfest/internal/repository/postgres"
	"github.com/choraria/devfest/internal/repository/redis"
	"github.com/choraria/devfest/internal/repository/snapshot"
)

// NewStore builds the store adapter named by cfg.StoreDriver. The returned
// close function releases the underlying connection pool; it is a no-op for
// the snapshot driver.
func NewStore(cfg *config.Config) (domain.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		opt, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := goredis.NewClient(opt)
		return redis.NewStore(client), client.Close, nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return postgres.NewStore(db), db.Close, nil

	case config.DriverSnapshot:
		return snapshot.NewStore(cfg.SnapshotPath), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
