// Package search walks a paginated source page by page and collects the items
// matching a predicate.
package search

import (
	"context"
	"toolbox/internal/components/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_search         = "search"
	report_search_pages   = "search.pages"
	report_search_matches = "search.matches"
)

var (
	tracer = otel.Tracer("toolbox.internal.search")
	meter  = otel.Meter("toolbox.internal.search")
)

const (
	metric_search_pages   = "search.pages"
	metric_search_matches = "search.matches"
)

// record adds one search to the page and match counters, instruments that
// cannot be created are reported and skipped.
func record(ctx context.Context, tel telemetry.API, pages, matches int, stopped bool) {
	attrs := metric.WithAttributes(attribute.Bool("search.stopped_early", stopped))

	pageCounter, err := meter.Int64Counter(
		metric_search_pages,
		metric.WithDescription("The total amount of pages fetched by searches."),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		tel.ReportBroken(report_search, err, metric_search_pages)
	} else {
		pageCounter.Add(ctx, int64(pages), attrs)
	}

	matchCounter, err := meter.Int64Counter(
		metric_search_matches,
		metric.WithDescription("The total amount of items matched by searches."),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		tel.ReportBroken(report_search, err, metric_search_matches)
	} else {
		matchCounter.Add(ctx, int64(matches), attrs)
	}
}

// Page is one page of items and whether the source has a page after it.
type Page[T any] struct {
	Items   []T
	HasNext bool
}

// Fetcher retrieves a single page by its 1-based number.
//
// On failure a Fetcher returns an empty page with HasNext = false together
// with the error, so callers that ignore the error still stop.
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, page int) (Page[T], error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context, page int) (Page[T], error)

func (f FetcherFunc[T]) FetchPage(ctx context.Context, page int) (Page[T], error) {
	return f(ctx, page)
}

// Predicate decides whether an item is part of the result.
type Predicate[T any] func(item T) bool

// Result holds the matches in page order, then in-page order.
type Result[T any] struct {
	Items []T
	// Pages is the number of fetch calls made.
	Pages int
	// Err is the failure that ended the search before the source ran out of
	// pages, nil when the search ended normally.
	Err error
}

// Search fetches pages starting at 1 and collects every item the predicate
// accepts. It stops after the first page without a next page, after maxPages
// pages, or after the first failed fetch, whichever comes first. It does not
// return an error: a failed fetch ends the search like a last page and is
// recorded in Result.Err.
//
// maxPages below 1 is treated as 1, a nil predicate accepts every item.
func Search[T any](
	ctx context.Context,
	fetcher Fetcher[T],
	predicate Predicate[T],
	maxPages int,
	tel telemetry.API,
) Result[T] {
	ctx, span := tracer.Start(ctx, "search.Search")
	defer span.End()

	if maxPages < 1 {
		maxPages = 1
	}
	if predicate == nil {
		predicate = func(T) bool { return true }
	}

	result := Result[T]{Items: []T{}}
	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}

		fetched, err := fetcher.FetchPage(ctx, page)
		result.Pages++
		for _, item := range fetched.Items {
			if predicate(item) {
				result.Items = append(result.Items, item)
			}
		}
		if err != nil {
			result.Err = err
			break
		}
		if !fetched.HasNext {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("search.pages", result.Pages),
		attribute.Int("search.matches", len(result.Items)),
		attribute.Int("search.max_pages", maxPages),
	)
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, "search ended early")
		tel.ReportWarning(report_search, result.Err, result.Pages)
	}
	record(ctx, tel, result.Pages, len(result.Items), result.Err != nil)
	tel.ReportCount(report_search_pages, int64(result.Pages))
	tel.ReportCount(report_search_matches, int64(len(result.Items)))

	return result
}
