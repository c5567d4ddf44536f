package quotes

import (
	"context"
	"net/url"
	"time"
	"toolbox/internal/components/assert"
	"toolbox/internal/search"

	"github.com/PuerkitoBio/purell"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedFetcher remembers successfully fetched pages for the lifetime of the
// process so that viewing a page and then searching does not fetch it twice.
type CachedFetcher struct {
	inner   search.Fetcher[Quote]
	baseUrl *url.URL
	cache   *expirable.LRU[string, Page]
}

// NewCachedFetcher wraps inner, size is the number of pages kept and ttl is how
// long a page stays valid.
func NewCachedFetcher(inner search.Fetcher[Quote], baseUrl *url.URL, size int, ttl time.Duration) CachedFetcher {
	assert.NotNil(inner)
	assert.NotNil(baseUrl)
	if size <= 0 {
		size = 64
	}
	return CachedFetcher{
		inner:   inner,
		baseUrl: baseUrl,
		cache:   expirable.NewLRU[string, Page](size, nil, ttl),
	}
}

func (c CachedFetcher) key(page int) string {
	return purell.NormalizeURL(
		PageURL(c.baseUrl, page),
		purell.FlagsSafe|purell.FlagsUsuallySafeNonGreedy,
	)
}

func (c CachedFetcher) FetchPage(ctx context.Context, page int) (Page, error) {
	key := c.key(page)
	cached, hit := c.cache.Get(key)
	if hit {
		return cached, nil
	}

	fetched, err := c.inner.FetchPage(ctx, page)
	if err != nil {
		return fetched, err
	}
	c.cache.Add(key, fetched)
	return fetched, nil
}

// Len returns the number of cached pages.
func (c CachedFetcher) Len() int {
	return c.cache.Len()
}
