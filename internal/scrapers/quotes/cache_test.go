package quotes

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/search"

	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	noop := search.FetcherFunc[Quote](func(ctx context.Context, page int) (Page, error) {
		return Page{}, nil
	})

	testCases := []struct {
		base   string
		page   int
		expect string
	}{
		{base: "http://quotes.toscrape.com", page: 1, expect: "http://quotes.toscrape.com/page/1/"},
		{base: "http://quotes.toscrape.com/", page: 2, expect: "http://quotes.toscrape.com/page/2/"},
		{base: "http://Quotes.ToScrape.com:80", page: 3, expect: "http://quotes.toscrape.com/page/3/"},
		{base: "http://example.com/mirror", page: 1, expect: "http://example.com/mirror/page/1/"},
	}

	for _, test := range testCases {
		baseUrl, err := url.Parse(test.base)
		require.NoError(t, err)
		cache := NewCachedFetcher(noop, baseUrl, 4, time.Minute)
		require.Equal(t, test.expect, cache.key(test.page))
	}
}

func TestCachedFetcher(t *testing.T) {
	site := newFakeSite(t)
	client := newTestClient(t, site.server.URL, telemetry.NewRecorder())
	cached := NewCachedFetcher(client, client.BaseUrl(), 4, time.Minute)

	first, err := cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	second, err := cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, int64(1), site.hits.Load())
	require.Equal(t, 1, cached.Len())

	res := search.Search[Quote](context.Background(), cached, nil, 10, telemetry.NewRecorder())
	require.Len(t, res.Items, 5)
	// only page 2 had to be fetched
	require.Equal(t, int64(2), site.hits.Load())
}

func TestCachedFetcherSkipsFailures(t *testing.T) {
	calls := 0
	inner := search.FetcherFunc[Quote](func(ctx context.Context, page int) (Page, error) {
		calls++
		if calls == 1 {
			return Page{}, errors.New("temporary failure")
		}
		return Page{Items: []Quote{{Text: "t", Author: "a"}}}, nil
	})
	baseUrl, err := url.Parse(DefaultBaseUrl)
	require.NoError(t, err)
	cached := NewCachedFetcher(inner, baseUrl, 4, time.Minute)

	_, err = cached.FetchPage(context.Background(), 1)
	require.Error(t, err)
	require.Equal(t, 0, cached.Len())

	page, err := cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	_, err = cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestCachedFetcherExpires(t *testing.T) {
	calls := 0
	inner := search.FetcherFunc[Quote](func(ctx context.Context, page int) (Page, error) {
		calls++
		return Page{}, nil
	})
	baseUrl, err := url.Parse(DefaultBaseUrl)
	require.NoError(t, err)
	cached := NewCachedFetcher(inner, baseUrl, 4, time.Millisecond*20)

	_, err = cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 60)
	_, err = cached.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
