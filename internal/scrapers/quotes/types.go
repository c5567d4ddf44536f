package quotes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"toolbox/internal/search"
	"toolbox/pkg/textutil"
)

const DefaultBaseUrl = "http://quotes.toscrape.com"

// Quote is a single scraped quote. It is never mutated after it is parsed.
type Quote struct {
	Text   string
	Author string
	Tags   []string
}

func (q Quote) String() string {
	tags := "-"
	if len(q.Tags) > 0 {
		tags = strings.Join(q.Tags, ", ")
	}
	return fmt.Sprintf("%s\n   by %s | Tags: %s", q.Text, q.Author, tags)
}

// Page is one page of quotes.
type Page = search.Page[Quote]

// PageURL returns the url of the given page under base, ex. <base>/page/2/
func PageURL(base *url.URL, page int) *url.URL {
	u := base.JoinPath("page", strconv.Itoa(page)+"/")
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u
}

// ByAuthor matches quotes whose author contains name, ignoring case and
// surrounding whitespace.
func ByAuthor(name string) search.Predicate[Quote] {
	return func(q Quote) bool {
		return textutil.ContainsFold(q.Author, name)
	}
}

// ByTag matches quotes carrying tag, ignoring case.
func ByTag(tag string) search.Predicate[Quote] {
	return func(q Quote) bool {
		for _, t := range q.Tags {
			if textutil.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
}
