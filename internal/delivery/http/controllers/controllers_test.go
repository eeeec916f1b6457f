package controllers

import (
	"context"
	"io"
	"log/slog"

	"github.com/choraria/devfest/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeDirectoryService implements domain.DirectoryService for handler tests.
type fakeDirectoryService struct {
	resolveResult string
	resolveErr    error
	lastResolved  string

	listAllResult []*domain.Entry
	listAllErr    error
	lastListOpts  domain.ListOptions

	nearestResult []domain.RankedEntry
	nearestErr    error
	lastObserver  domain.Coordinate
	lastK         int

	seedErr  error
	lastSeed *domain.Entry
}

func (f *fakeDirectoryService) Resolve(ctx context.Context, slug string) (string, error) {
	f.lastResolved = slug
	return f.resolveResult, f.resolveErr
}

func (f *fakeDirectoryService) ListAll(ctx context.Context, opts domain.ListOptions) ([]*domain.Entry, error) {
	f.lastListOpts = opts
	return f.listAllResult, f.listAllErr
}

func (f *fakeDirectoryService) Nearest(ctx context.Context, observer domain.Coordinate, k int) ([]domain.RankedEntry, error) {
	f.lastObserver = observer
	f.lastK = k
	return f.nearestResult, f.nearestErr
}

func (f *fakeDirectoryService) BoundingCenter(entries []*domain.Entry) (domain.Coordinate, bool) {
	return domain.BoundingCenter(entries)
}

func (f *fakeDirectoryService) Seed(ctx context.Context, e *domain.Entry) error {
	f.lastSeed = e
	return f.seedErr
}
