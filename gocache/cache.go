// Package gocache provides in-memory TTL caching decorators for the
// MediaWiki client services, so repeated reads of the same article within
// a session do not refetch.
package gocache

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/mwierzba/wikiread"
)

// DefaultTTL bounds how long fetched pages and summaries are reused.
const DefaultTTL = 15 * time.Minute

// Compile-time interface verification.
var (
	_ wikiread.SummaryService = (*SummaryCache)(nil)
	_ wikiread.PageService    = (*PageCache)(nil)
)

// SummaryCache caches summary fetches by title.
type SummaryCache struct {
	next  wikiread.SummaryService
	cache *cache.Cache
}

// NewSummaryCache creates a caching decorator around a SummaryService.
// A non-positive ttl falls back to DefaultTTL.
func NewSummaryCache(next wikiread.SummaryService, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SummaryCache{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// FetchSummary returns the cached summary for the title or delegates to
// the wrapped service. Errors are never cached.
func (c *SummaryCache) FetchSummary(ctx context.Context, title string) (*wikiread.Summary, error) {
	if v, ok := c.cache.Get(title); ok {
		return v.(*wikiread.Summary), nil
	}

	summary, err := c.next.FetchSummary(ctx, title)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(title, summary)
	return summary, nil
}

// PageCache caches rendered page HTML by title.
type PageCache struct {
	next  wikiread.PageService
	cache *cache.Cache
}

// NewPageCache creates a caching decorator around a PageService.
// A non-positive ttl falls back to DefaultTTL.
func NewPageCache(next wikiread.PageService, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// FetchPageHTML returns the cached HTML for the title or delegates to the
// wrapped service. Errors are never cached.
func (c *PageCache) FetchPageHTML(ctx context.Context, title string) (string, error) {
	if v, ok := c.cache.Get(title); ok {
		return v.(string), nil
	}

	html, err := c.next.FetchPageHTML(ctx, title)
	if err != nil {
		return "", err
	}
	c.cache.SetDefault(title, html)
	return html, nil
}
