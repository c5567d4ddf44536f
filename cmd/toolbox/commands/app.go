package commands

import (
	"context"
	"log/slog"
	"time"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/config"
	"toolbox/internal/scrapers/quotes"
	"toolbox/internal/search"

	"github.com/spf13/cobra"
)

type appKey struct{}

// app holds what every command needs. execute puts it in the root context and
// the root command fills it in before any subcommand runs.
type app struct {
	cfg     config.Config
	tel     telemetry.API
	closers []func(ctx context.Context) error
}

func withApp(ctx context.Context, value *app) context.Context {
	return context.WithValue(ctx, appKey{}, value)
}

func getApp(cmd *cobra.Command) *app {
	return cmd.Root().Context().Value(appKey{}).(*app)
}

// onClose registers fn to run once the command line has finished, whether
// the command succeeded or not.
func (a *app) onClose(fn func(ctx context.Context) error) {
	a.closers = append(a.closers, fn)
}

// close runs the registered closers in reverse order.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		err := a.closers[i](ctx)
		if err != nil {
			slog.Warn("failed to close", "err", err)
		}
	}
	a.closers = nil
}

// quotesFetcher returns a quotes client behind a page cache.
func (a *app) quotesFetcher() (search.Fetcher[quotes.Quote], error) {
	client, err := quotes.NewClient(a.cfg.Quotes.ClientOptions(), a.tel)
	if err != nil {
		return nil, err
	}
	return quotes.NewCachedFetcher(
		client,
		client.BaseUrl(),
		a.cfg.Quotes.CacheSize,
		a.cfg.Quotes.CacheTtl(),
	), nil
}
