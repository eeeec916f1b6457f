package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the requested slug has no store entry. Expected
	// absence, not a failure.
	ErrNotFound = errors.New("entry not found")
	// ErrStoreUnavailable means the backing store could not be reached or
	// timed out. Aborts the whole query, never yields partial results.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMalformedRecord means an individual stored value failed parsing or
	// required-field validation. Handled by exclusion, never escalated.
	ErrMalformedRecord = errors.New("malformed record")
)

// KeyValue is one result of a batched fetch. A nil Value means the key had
// no entry at read time.
type KeyValue struct {
	Key   string
	Value []byte
}

// Store is the capability set any backing store must provide: a key-value
// store, a relational table, or a static snapshot all present the same
// surface. GetMany must fetch a batch in as few round trips as the backing
// store allows.
type Store interface {
	GetOne(ctx context.Context, key string) ([]byte, error)
	ListKeys(ctx context.Context) ([]string, error)
	GetMany(ctx context.Context, keys []string) ([]KeyValue, error)
	SetOne(ctx context.Context, key string, value []byte) error
}

// SortKey selects the ordering of a directory listing.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByLocation SortKey = "location"
)

// ListOptions are the optional filter and sort applied by ListAll.
type ListOptions struct {
	// Filter is a case-insensitive substring matched against city, chapter,
	// event name, slug, and country. Empty means no filtering.
	Filter string
	// SortBy is empty for unspecified order.
	SortBy     SortKey
	Descending bool
}

// DirectoryService answers the directory queries behind the redirect
// handler, the listing API, and the map view.
type DirectoryService interface {
	// Resolve returns the destination URL for a slug. O(1) in store round
	// trips; this is the hot path behind the public redirect.
	Resolve(ctx context.Context, slug string) (string, error)
	// ListAll returns every valid entry, optionally filtered and sorted.
	ListAll(ctx context.Context, opts ListOptions) ([]*Entry, error)
	// Nearest ranks located entries by distance from the observer.
	Nearest(ctx context.Context, observer Coordinate, k int) ([]RankedEntry, error)
	// BoundingCenter is the fallback map center when no observer coordinate
	// is available.
	BoundingCenter(entries []*Entry) (Coordinate, bool)
	// Seed writes one entry through to the store. Used by the seeding tool
	// only; the query side never mutates.
	Seed(ctx context.Context, e *Entry) error
}
