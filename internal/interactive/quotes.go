package interactive

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"toolbox/internal/components/assert"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/export"
	"toolbox/internal/scrapers/quotes"
	"toolbox/internal/search"
	"toolbox/pkg/textutil"
)

const maxSuggestions = 3

type QuotesOptions struct {
	// MaxPages is used when the user does not give a valid page count.
	MaxPages int
	// ExportPath is the file "export last results" writes to.
	ExportPath string
}

type quotesMenu struct {
	prompt  *Prompt
	fetcher search.Fetcher[quotes.Quote]
	authors *quotes.AuthorIndex
	options QuotesOptions
	tel     telemetry.API
}

// RunQuotes runs the quotes scraper menu until the user exits or the input
// ends. Whatever was viewed or searched last is what gets exported.
func RunQuotes(ctx context.Context, prompt *Prompt, fetcher search.Fetcher[quotes.Quote], options QuotesOptions, tel telemetry.API) error {
	assert.NotNil(fetcher)
	assert.NotNil(tel)

	if options.MaxPages < 1 {
		options.MaxPages = 10
	}
	if options.ExportPath == "" {
		options.ExportPath = export.DefaultFilename
	}
	menu := quotesMenu{
		prompt:  prompt,
		fetcher: fetcher,
		authors: quotes.NewAuthorIndex(),
		options: options,
		tel:     tel,
	}

	var last []quotes.Quote
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		prompt.Println("\n=== Interactive Web Scraper ===")
		prompt.Println("1) View quotes from a page")
		prompt.Println("2) Search quotes by author (across pages)")
		prompt.Println("3) Search quotes by tag (across pages)")
		prompt.Println("4) Export last results to CSV")
		prompt.Println("5) Exit")

		choice, err := prompt.Ask("Enter choice (1-5)")
		if err != nil {
			return endOfInput(err)
		}

		var results []quotes.Quote
		viewed := true
		switch choice {
		case "1":
			results, viewed, err = menu.viewPage(ctx)
		case "2":
			results, err = menu.searchAuthor(ctx)
		case "3":
			results, err = menu.searchTag(ctx)
		case "4":
			viewed = false
			menu.export(last)
		case "5":
			prompt.Println("👋 Bye!")
			return nil
		default:
			viewed = false
			prompt.Println("⚠️ Invalid choice. Try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
		if viewed {
			last = results
		}
	}
}

func (m quotesMenu) printQuotes(items []quotes.Quote) {
	if len(items) == 0 {
		m.prompt.Println("⚠️ No quotes found.")
		return
	}
	RenderQuotes(m.prompt.Writer(), items)
}

// viewPage returns viewed = false when no page was fetched.
func (m quotesMenu) viewPage(ctx context.Context) (results []quotes.Quote, viewed bool, err error) {
	answer, err := m.prompt.Ask("Enter page number (1..)")
	if err != nil {
		return nil, false, err
	}
	page, err := strconv.Atoi(answer)
	if err != nil {
		m.prompt.Println("⚠️ Enter a valid number.")
		return nil, false, nil
	}

	res, err := m.fetcher.FetchPage(ctx, page)
	if errors.Is(err, quotes.ErrInvalidPage) {
		m.prompt.Println("⚠️ Enter a valid number.")
		return nil, false, nil
	}
	if err != nil {
		m.prompt.Println("❌ Network error:", err)
	}
	m.printQuotes(res.Items)
	return res.Items, true, nil
}

// askMaxPages falls back to the configured page count on empty or invalid
// input.
func (m quotesMenu) askMaxPages() (int, error) {
	answer, err := m.prompt.Ask("Max pages to search (default " + strconv.Itoa(m.options.MaxPages) + ")")
	if err != nil {
		return 0, err
	}
	maxPages, err := strconv.Atoi(answer)
	if err != nil {
		return m.options.MaxPages, nil
	}
	return maxPages, nil
}

func (m quotesMenu) search(ctx context.Context, predicate search.Predicate[quotes.Quote], maxPages int) []quotes.Quote {
	res := search.Search[quotes.Quote](ctx, m.fetcher, predicate, maxPages, m.tel)
	m.printQuotes(res.Items)
	if res.Err != nil {
		m.prompt.Println("❌ Network error:", res.Err)
		m.prompt.Printf("⚠️ Search stopped after %d page(s), results may be incomplete.\n", res.Pages)
	}
	return res.Items
}

func (m quotesMenu) searchAuthor(ctx context.Context) ([]quotes.Quote, error) {
	answer, err := m.prompt.Ask("Author name (e.g., Albert Einstein)")
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(answer)
	maxPages, err := m.askMaxPages()
	if err != nil {
		return nil, err
	}

	results := m.search(ctx, m.authors.Observe(quotes.ByAuthor(name)), maxPages)
	m.prompt.Printf("\n🔎 Found %d quotes by '%s'.\n", len(results), textutil.Title(name))

	if len(results) == 0 {
		suggestions := m.authors.Suggest(name, maxSuggestions)
		if len(suggestions) > 0 {
			m.prompt.Printf("💡 Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	}
	return results, nil
}

func (m quotesMenu) searchTag(ctx context.Context) ([]quotes.Quote, error) {
	answer, err := m.prompt.Ask("Tag (e.g., life, love, truth)")
	if err != nil {
		return nil, err
	}
	tag := strings.ToLower(answer)
	maxPages, err := m.askMaxPages()
	if err != nil {
		return nil, err
	}

	results := m.search(ctx, quotes.ByTag(tag), maxPages)
	m.prompt.Printf("\n🏷️ Found %d quotes with tag '%s'.\n", len(results), tag)
	return results, nil
}

func (m quotesMenu) export(items []quotes.Quote) {
	n, err := export.WriteFile(m.options.ExportPath, items)
	if errors.Is(err, export.ErrNothingToExport) {
		m.prompt.Println("⚠️ Nothing to export.")
		return
	}
	if err != nil {
		m.prompt.Println("❌", err)
		return
	}
	m.prompt.Printf("✅ Exported %d quotes to %s\n", n, m.options.ExportPath)
}
