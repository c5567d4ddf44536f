package quotes

import (
	"sort"
	"strings"
	"toolbox/internal/search"
	"toolbox/pkg/textutil"

	"github.com/antzucaro/matchr"
)

// minSuggestionSimilarity is the Jaro-Winkler similarity an author needs to be
// suggested.
const minSuggestionSimilarity = 0.8

// AuthorIndex remembers every author a search looked at, so that a search
// without matches can suggest what the user probably meant.
type AuthorIndex struct {
	seen    map[string]struct{}
	authors []string
}

func NewAuthorIndex() *AuthorIndex {
	return &AuthorIndex{seen: map[string]struct{}{}}
}

func (a *AuthorIndex) add(author string) {
	if _, ok := a.seen[author]; ok {
		return
	}
	a.seen[author] = struct{}{}
	a.authors = append(a.authors, author)
}

// Observe wraps a predicate so every quote it is asked about is indexed.
func (a *AuthorIndex) Observe(predicate search.Predicate[Quote]) search.Predicate[Quote] {
	return func(q Quote) bool {
		a.add(q.Author)
		return predicate(q)
	}
}

// Authors returns the indexed authors in the order they were first seen.
func (a *AuthorIndex) Authors() []string {
	return append([]string(nil), a.authors...)
}

func similarity(query, author string) float64 {
	author = textutil.Fold(author)
	best := matchr.JaroWinkler(query, author, false)
	for _, word := range strings.Fields(author) {
		score := matchr.JaroWinkler(query, word, false)
		if score > best {
			best = score
		}
	}
	return best
}

// Suggest returns at most limit indexed authors similar to query, most similar
// first.
func (a *AuthorIndex) Suggest(query string, limit int) []string {
	query = textutil.Fold(query)
	if query == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		author string
		score  float64
	}
	var candidates []scored
	for _, author := range a.authors {
		score := similarity(query, author)
		if score >= minSuggestionSimilarity {
			candidates = append(candidates, scored{author: author, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var out []string
	for i := 0; i < len(candidates) && i < limit; i++ {
		out = append(out, candidates[i].author)
	}
	return out
}
