package sheets

import (
	"context"
	"log/slog"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/myfrench-backend/internal/config"
	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Fetcher is the fetch contract the cache decorates. *Client implements it.
type Fetcher interface {
	FetchRows(ctx context.Context) ([]domain.Record, error)
}

// Cache is a bounded, time-based read-through cache in front of a Fetcher.
// Entries expire after the configured TTL and the LRU holds at most
// MaxEntries sources, so distinct spreadsheets or ranges never collide and
// the cache cannot grow without bound. A failed fetch is never cached; the
// next request retries upstream.
type Cache struct {
	inner Fetcher
	key   string
	lru   *expirable.LRU[string, []domain.Record]
	log   *slog.Logger
}

// NewCache wraps fetcher with an expiring LRU. The key must identify the
// fetched source, e.g. Client.SourceKey().
func NewCache(fetcher Fetcher, key string, cfg config.CacheConfig, logger *slog.Logger) *Cache {
	return &Cache{
		inner: fetcher,
		key:   key,
		lru:   expirable.NewLRU[string, []domain.Record](cfg.MaxEntries, nil, cfg.TTL),
		log:   logger.With("adapter", "sheetcache"),
	}
}

// FetchRows returns the cached rows when present and fresh, otherwise
// fetches upstream once and stores the result.
func (c *Cache) FetchRows(ctx context.Context) ([]domain.Record, error) {
	if rows, ok := c.lru.Get(c.key); ok {
		c.log.DebugContext(ctx, "cache hit", slog.String("key", c.key), slog.Int("records", len(rows)))
		return rows, nil
	}

	rows, err := c.inner.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	c.lru.Add(c.key, rows)
	c.log.DebugContext(ctx, "cache fill", slog.String("key", c.key), slog.Int("records", len(rows)))
	return rows, nil
}

// Invalidate drops the cached entry; the next fetch goes upstream.
func (c *Cache) Invalidate() {
	c.lru.Remove(c.key)
}
