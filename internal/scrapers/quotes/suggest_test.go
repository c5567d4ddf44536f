package quotes

import (
	"context"
	"testing"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/search"

	"github.com/stretchr/testify/require"
)

func TestAuthorIndexObserve(t *testing.T) {
	index := NewAuthorIndex()
	predicate := index.Observe(ByAuthor("nobody"))

	for _, q := range expectedPage1 {
		require.False(t, predicate(q))
	}
	require.Equal(t, []string{"Albert Einstein", "J.K. Rowling"}, index.Authors())
}

func TestAuthorIndexSuggest(t *testing.T) {
	index := NewAuthorIndex()
	for _, author := range []string{"Albert Einstein", "J.K. Rowling", "Jane Austen"} {
		index.add(author)
	}

	suggestions := index.Suggest("einstien", 3)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "Albert Einstein", suggestions[0])

	require.Equal(t, []string{"Jane Austen"}, index.Suggest("jane austin", 1))
	require.Empty(t, index.Suggest("zzzzzz", 3))
	require.Empty(t, index.Suggest("", 3))
	require.Empty(t, index.Suggest("einstein", 0))
}

func TestSuggestAfterEmptySearch(t *testing.T) {
	site := newFakeSite(t)
	client := newTestClient(t, site.server.URL, telemetry.NewRecorder())

	index := NewAuthorIndex()
	res := search.Search[Quote](
		context.Background(),
		client,
		index.Observe(ByAuthor("austin")),
		10,
		telemetry.NewRecorder(),
	)
	require.Empty(t, res.Items)
	require.Contains(t, index.Suggest("austin", 3), "Jane Austen")
}
