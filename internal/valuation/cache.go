package valuation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dynasty-league-mcp/internal/metrics"
)

// DefaultTTL is the freshness window for a fetched valuation table.
const DefaultTTL = 6 * time.Hour

// Fetcher supplies a full valuation table. *Client implements it; tests
// substitute a counting stub.
type Fetcher interface {
	FetchValues(ctx context.Context) ([]Entry, error)
}

// Store persists table snapshots so a restarted process can warm-start
// without hitting the pricing source. May be nil.
type Store interface {
	Load(ctx context.Context) ([]Entry, time.Time, error)
	Save(ctx context.Context, entries []Entry, fetchedAt time.Time) error
}

// Cache holds the process-wide copy of the valuation table. A table younger
// than TTL is served without network access; refreshes replace the table
// wholesale and are coalesced so at most one fetch is in flight at a time.
type Cache struct {
	Fetcher Fetcher
	Store   Store
	TTL     time.Duration

	now func() time.Time

	mu        sync.RWMutex
	entries   []Entry
	fetchedAt time.Time
}

func NewCache(fetcher Fetcher) *Cache {
	return &Cache{
		Fetcher: fetcher,
		TTL:     DefaultTTL,
		now:     time.Now,
	}
}

// Values returns the cached table, refreshing it first when stale. The
// returned slice is shared; callers must treat it as read-only.
//
// A failed refresh never clobbers an existing copy: callers get the stale
// table instead of an error. With no copy at all, the error wraps
// ErrUnavailable.
func (c *Cache) Values(ctx context.Context) ([]Entry, error) {
	c.mu.RLock()
	if c.fresh() {
		entries := c.entries
		c.mu.RUnlock()
		metrics.ValuationCacheHits.Inc()
		return entries, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// A concurrent caller may have finished the refresh while we waited.
	if c.fresh() {
		metrics.ValuationCacheHits.Inc()
		return c.entries, nil
	}

	// Cold process: try the snapshot store before the network.
	if len(c.entries) == 0 && c.Store != nil {
		if entries, at, err := c.Store.Load(ctx); err == nil && len(entries) > 0 && c.now().Sub(at) < c.TTL {
			c.entries = entries
			c.fetchedAt = at
			return c.entries, nil
		}
	}

	entries, err := c.Fetcher.FetchValues(ctx)
	if err != nil {
		if len(c.entries) > 0 {
			metrics.ValuationStaleServes.Inc()
			return c.entries, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.entries = entries
	c.fetchedAt = c.now()
	metrics.ValuationRefreshes.Inc()

	if c.Store != nil {
		// Snapshot failures are not the caller's problem.
		_ = c.Store.Save(ctx, entries, c.fetchedAt)
	}
	return c.entries, nil
}

// fresh reports whether the in-memory table is inside the freshness window.
// Callers must hold at least a read lock.
func (c *Cache) fresh() bool {
	return len(c.entries) > 0 && c.now().Sub(c.fetchedAt) < c.TTL
}
