package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/choraria/devfest/internal/domain"
	"github.com/choraria/devfest/internal/metrics"
)

type directoryService struct {
	store          domain.Store
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDirectoryService builds the directory query service on top of a store
// adapter. Every store call runs under timeout so an unreachable store
// resolves as ErrStoreUnavailable instead of hanging the caller.
func NewDirectoryService(store domain.Store, logger *slog.Logger, timeout time.Duration) domain.DirectoryService {
	return &directoryService{
		store:          store,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *directoryService) Resolve(ctx context.Context, slug string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	raw, err := s.store.GetOne(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		metrics.StoreFailures.WithLabelValues("get_one").Inc()
		return "", fmt.Errorf("get %q: %w", slug, err)
	}

	e, err := domain.DecodeEntry(raw, slug)
	if err != nil {
		// A stored value we cannot use is indistinguishable from absence
		// for the redirect path; it still gets counted.
		metrics.MalformedRecords.Inc()
		s.logger.Warn("dropping malformed record", "key", slug, "err", err)
		return "", domain.ErrNotFound
	}
	return e.DestinationURL, nil
}

func (s *directoryService) ListAll(ctx context.Context, opts domain.ListOptions) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Filter != "" {
		entries = filterEntries(entries, opts.Filter)
	}
	sortEntries(entries, opts)
	return entries, nil
}

// fetchAll is the bulk retrieval path: one ListKeys round trip, one batched
// GetMany, then tolerant per-record parsing. A store failure aborts with no
// partial result; malformed records are dropped and counted.
func (s *directoryService) fetchAll(ctx context.Context) ([]*domain.Entry, error) {
	keys, err := s.store.ListKeys(ctx)
	if err != nil {
		metrics.StoreFailures.WithLabelValues("list_keys").Inc()
		return nil, fmt.Errorf("list keys: %w", err)
	}
	if len(keys) == 0 {
		return []*domain.Entry{}, nil
	}

	pairs, err := s.store.GetMany(ctx, keys)
	if err != nil {
		metrics.StoreFailures.WithLabelValues("get_many").Inc()
		return nil, fmt.Errorf("get %d values: %w", len(keys), err)
	}

	entries := make([]*domain.Entry, 0, len(pairs))
	dropped := 0
	for _, kv := range pairs {
		if kv.Value == nil {
			continue
		}
		e, err := domain.DecodeEntry(kv.Value, kv.Key)
		if err != nil {
			metrics.MalformedRecords.Inc()
			dropped++
			s.logger.Warn("dropping malformed record", "key", kv.Key, "err", err)
			continue
		}
		entries = append(entries, e)
	}
	if dropped > 0 {
		s.logger.Info("bulk fetch dropped records", "dropped", dropped, "kept", len(entries))
	}
	return entries, nil
}

func (s *directoryService) Nearest(ctx context.Context, observer domain.Coordinate, k int) ([]domain.RankedEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Nearest(observer, entries, k), nil
}

func (s *directoryService) BoundingCenter(entries []*domain.Entry) (domain.Coordinate, bool) {
	return domain.BoundingCenter(entries)
}

func (s *directoryService) Seed(ctx context.Context, e *domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if e == nil || e.Slug == "" {
		return fmt.Errorf("%w: entry without slug", domain.ErrMalformedRecord)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %q: %w", e.Slug, err)
	}
	if err := s.store.SetOne(ctx, e.Slug, raw); err != nil {
		metrics.StoreFailures.WithLabelValues("set_one").Inc()
		return fmt.Errorf("set %q: %w", e.Slug, err)
	}
	return nil
}

// filterEntries keeps entries whose city, chapter, display name, slug, or
// country contains the needle, case-insensitively.
func filterEntries(entries []*domain.Entry, needle string) []*domain.Entry {
	needle = strings.ToLower(needle)
	out := make([]*domain.Entry, 0, len(entries))
	for _, e := range entries {
		haystacks := []string{e.City, e.GDGChapter, e.DisplayName(), e.Slug, e.CountryName}
		for _, h := range haystacks {
			if h != "" && strings.Contains(strings.ToLower(h), needle) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func sortEntries(entries []*domain.Entry, opts domain.ListOptions) {
	switch opts.SortBy {
	case domain.SortByDate:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := parseDate(entries[i].DevfestDate), parseDate(entries[j].DevfestDate)
			if opts.Descending {
				return b.Before(a)
			}
			return a.Before(b)
		})
	case domain.SortByLocation:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := strings.ToLower(entries[i].City), strings.ToLower(entries[j].City)
			if opts.Descending {
				return a > b
			}
			return a < b
		})
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// parseDate parses the stored ISO-like date string. Missing or unparseable
// dates collapse to the zero time so they sort as the lowest value rather
// than disappearing from listings.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
