// The seeding tool populates or refreshes the configured store from a JSON
// export, one SetOne per record. It is the only writer in the system; the
// query side never mutates.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/choraria/devfest/config"
	"github.com/choraria/devfest/internal/domain"
	"github.com/choraria/devfest/internal/repository"
	"github.com/choraria/devfest/internal/services"
)

func main() {
	dataPath := flag.String("data", "data/devfest-data.json", "path to the JSON export to seed from")
	flag.Parse()

	logger := config.NewLogger("devfest-seed")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		logger.Error("read seed data", "path", *dataPath, "err", err)
		os.Exit(1)
	}
	var entries []*domain.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Error("decode seed data", "path", *dataPath, "err", err)
		os.Exit(1)
	}

	store, closeStore, err := repository.NewStore(cfg)
	if err != nil {
		logger.Error("init store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer func() { _ = closeStore() }()

	directory := services.NewDirectoryService(store, logger, cfg.StoreTimeout)

	ctx := context.Background()
	seeded, skipped := 0, 0
	for _, e := range entries {
		if e.Slug == "" {
			logger.Warn("skipping record without slug", "name", e.DisplayName())
			skipped++
			continue
		}
		if err := directory.Seed(ctx, e); err != nil {
			logger.Error("seed failed", "slug", e.Slug, "err", err)
			os.Exit(1)
		}
		logger.Info("seeded", "slug", e.Slug)
		seeded++
	}
	logger.Info("seeding completed", "seeded", seeded, "skipped", skipped)
}
