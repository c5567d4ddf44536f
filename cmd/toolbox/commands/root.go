package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

const serviceName = "toolbox"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "toolbox",
	Short:         "toolbox bundles a task manager, a temperature converter and a quotes scraper.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(cmd.Root().Context())
		a := getApp(cmd)

		cfg, path, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if verbose {
			cfg.Verbose = true
		}

		logger := newLogger(cfg.Verbose)
		slog.SetDefault(logger)
		if path != "" {
			slog.Debug("loaded config", "path", path)
		}

		otel, err := telemetry.SetupOtel(cmd.Context(), serviceName, cfg.Otlp)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		a.onClose(otel.Shutdown)

		a.cfg = cfg
		a.tel = telemetry.NewSlogAPI(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file, defaults to the nearest toolbox.json5.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// execute runs the command line, whatever the commands opened is closed even
// when they fail.
func execute(ctx context.Context, a *app) error {
	defer a.close()
	return rootCmd.ExecuteContext(withApp(ctx, a))
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx, &app{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
