// client.go contains the logic for fetching and parsing single pages of
// quotes.toscrape.com, anything spanning multiple pages lives in the search package.

package quotes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"toolbox/internal/components/assert"
	"toolbox/internal/components/telemetry"
	"toolbox/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch_page = "client.fetch-page"
	report_client_parse_page = "client.parse-page"
)

var tracer = otel.Tracer("toolbox.internal.scrapers.quotes")

var (
	// ErrPageUnavailable is returned when a page could not be retrieved for a
	// reason other than it not existing.
	ErrPageUnavailable = errors.New("page unavailable")
	ErrInvalidPage     = errors.New("page number must be 1 or more")
)

type ClientOptions struct {
	BaseUrl string
	// Timeout applies to each request, 0 means 10 seconds.
	Timeout time.Duration
	// RequestsPerSecond throttles requests, 0 disables throttling.
	RequestsPerSecond float64
	UserAgent         string
}

// Client fetches single pages of quotes, it implements search.Fetcher[Quote].
type Client struct {
	baseUrl *url.URL
	http    *resty.Client
	tel     telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (Client, error) {
	assert.NotNil(tel)
	tel = telemetry.NewScopedAPI("quotes_scraper", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return Client{}, fmt.Errorf("parse base url: %w", err)
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return Client{}, fmt.Errorf("base url must be absolute: %q", opts.BaseUrl)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Second * 10
	}

	httpClient := resty.New()
	httpClient.SetTimeout(timeout)
	if opts.UserAgent != "" {
		httpClient.SetHeader("user-agent", opts.UserAgent)
	}

	if opts.RequestsPerSecond > 0 {
		// burst of 1 keeps requests evenly spaced
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)

	return Client{
		baseUrl: baseUrl,
		http:    httpClient,
		tel:     tel,
	}, nil
}

func (c Client) BaseUrl() *url.URL {
	copied := *c.baseUrl
	return &copied
}

// FetchPage fetches and parses one page. A page that does not exist (404) is
// an empty last page and not an error. Any other failure returns an empty last
// page together with an error wrapping ErrPageUnavailable.
func (c Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	ctx, span := tracer.Start(ctx, "client.FetchPage", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint := PageURL(c.baseUrl, page).String()
	span.SetAttributes(attribute.String("quotes.page_url", endpoint))
	c.tel.ReportDebug(report_client_fetch_page, endpoint)

	fail := func(err error) (Page, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		c.tel.ReportBroken(report_client_fetch_page, err, endpoint)
		return Page{}, fmt.Errorf("%w: %s: %w", ErrPageUnavailable, endpoint, err)
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return fail(fmt.Errorf("fetch: %w", err))
	}
	if res.StatusCode() == http.StatusNotFound {
		c.tel.ReportDebug(report_client_fetch_page, "page does not exist", endpoint)
		return Page{}, nil
	}
	if res.IsError() {
		return fail(fmt.Errorf("unexpected status: %s", res.Status()))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return fail(fmt.Errorf("parse: %w", err))
	}

	parsed := c.parsePage(doc)
	span.SetAttributes(
		attribute.Int("quotes.count", len(parsed.Items)),
		attribute.Bool("quotes.has_next", parsed.HasNext),
	)
	return parsed, nil
}

func (c Client) parsePage(doc *goquery.Document) Page {
	page := Page{Items: []Quote{}}

	doc.Find("div.quote").Each(func(i int, sel *goquery.Selection) {
		text := htmlutil.Text(sel.Find("span.text"))
		author := htmlutil.Text(sel.Find("small.author"))
		if text == "" || author == "" {
			c.tel.ReportWarning(
				report_client_parse_page,
				fmt.Errorf("quote %d is missing its text or author", i),
			)
			return
		}

		tags := []string{}
		sel.Find("div.tags a.tag").Each(func(_ int, tag *goquery.Selection) {
			name := htmlutil.Text(tag)
			if name != "" {
				tags = append(tags, name)
			}
		})

		page.Items = append(page.Items, Quote{
			Text:   text,
			Author: author,
			Tags:   tags,
		})
	})

	page.HasNext = doc.Find("li.next a").Length() > 0
	return page
}
