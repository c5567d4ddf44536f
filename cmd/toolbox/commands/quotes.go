package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"toolbox/internal/export"
	"toolbox/internal/interactive"
	"toolbox/internal/scrapers/quotes"
	"toolbox/internal/search"

	"github.com/spf13/cobra"
)

var (
	exportPath string
	maxPages   int
)

func init() {
	for _, cmd := range []*cobra.Command{pageCmd, authorCmd, tagCmd} {
		cmd.Flags().StringVar(&exportPath, "export", "", "Export the quotes to this CSV file.")
		quotesCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{authorCmd, tagCmd} {
		cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum number of pages to search, defaults to quotes.max_pages.")
	}
	rootCmd.AddCommand(quotesCmd)
}

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Runs the interactive quotes.toscrape.com scraper.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		fetcher, err := a.quotesFetcher()
		if err != nil {
			return err
		}

		prompt := interactive.NewPrompt(os.Stdin, os.Stdout)
		return interactive.RunQuotes(cmd.Context(), prompt, fetcher, interactive.QuotesOptions{
			MaxPages:   a.cfg.Quotes.MaxPages,
			ExportPath: a.cfg.Export.Filename,
		}, a.tel)
	},
}

var pageCmd = &cobra.Command{
	Use:   "page <n>",
	Short: "Prints the quotes on a single page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page number %q: %w", args[0], err)
		}

		fetcher, err := getApp(cmd).quotesFetcher()
		if err != nil {
			return err
		}
		res, err := fetcher.FetchPage(cmd.Context(), page)
		if err != nil {
			return err
		}
		return showQuotes(cmd, res.Items)
	},
}

var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "Searches quotes whose author contains name, ignoring case.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, quotes.ByAuthor(args[0]))
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <tag>",
	Short: "Searches quotes with the given tag, ignoring case.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, quotes.ByTag(args[0]))
	},
}

func runSearch(cmd *cobra.Command, predicate search.Predicate[quotes.Quote]) error {
	a := getApp(cmd)
	fetcher, err := a.quotesFetcher()
	if err != nil {
		return err
	}

	pages := maxPages
	if pages <= 0 {
		pages = a.cfg.Quotes.MaxPages
	}
	res := search.Search[quotes.Quote](cmd.Context(), fetcher, predicate, pages, a.tel)
	if res.Err != nil {
		slog.Warn("search stopped early, results may be incomplete", "pages", res.Pages, "err", res.Err)
	}
	return showQuotes(cmd, res.Items)
}

func showQuotes(cmd *cobra.Command, items []quotes.Quote) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No quotes found.")
	} else {
		interactive.RenderQuotes(out, items)
		fmt.Fprintf(out, "%d quotes\n", len(items))
	}

	if exportPath == "" {
		return nil
	}
	n, err := export.WriteFile(exportPath, items)
	if errors.Is(err, export.ErrNothingToExport) {
		slog.Warn("nothing to export", "path", exportPath)
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("exported quotes", "count", n, "path", exportPath)
	return nil
}
