package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourneighborhoodchef/restock/internal/classifier"
	"github.com/yourneighborhoodchef/restock/internal/client"
	"github.com/yourneighborhoodchef/restock/internal/config"
	"github.com/yourneighborhoodchef/restock/internal/headers"
	"github.com/yourneighborhoodchef/restock/internal/logging"
	"github.com/yourneighborhoodchef/restock/internal/monitor"
	"github.com/yourneighborhoodchef/restock/internal/notify"
	"github.com/yourneighborhoodchef/restock/internal/state"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		statePath  string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:          "restock",
		Short:        "Check tracked product pages and push an alert when one comes back in stock",
		Long: "restock performs one pass over the configured product pages, compares each\n" +
			"stock status against the previous run, and sends a Pushover notification for\n" +
			"every product that went from not-in-stock to in-stock. It is meant to be\n" +
			"invoked on a schedule; each invocation is a complete, independent run.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, statePath, envFile)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "product list TOML (defaults to the embedded list)")
	cmd.Flags().StringVar(&statePath, "state", "", "state file path (defaults to $STATE_FILE or last_status.json)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "load environment variables from this file")

	return cmd
}

func run(ctx context.Context, configPath, statePath, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		// A .env next to the binary is a dev convenience, not required.
		_ = godotenv.Load()
	}

	creds, rt, err := config.FromEnv()
	if err != nil {
		return err
	}
	logging.Init(rt.LogLevel)

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	targets := make([]monitor.Target, 0, len(cfg.Products))
	for _, p := range cfg.Products {
		rule, err := cfg.Retailers[p.Retailer].Build()
		if err != nil {
			return fmt.Errorf("retailer %q: %w", p.Retailer, err)
		}
		targets = append(targets, monitor.Target{
			Name:     p.Name,
			URL:      p.URL,
			Retailer: p.Retailer,
			Rule:     rule,
		})
	}

	if len(rt.Proxies) > 0 {
		logging.Info().Int("count", len(rt.Proxies)).Msg("using proxies")
		client.SetProxyList(rt.Proxies)
	}
	headers.InitProfilePool(4 * len(targets))

	fetcher, err := client.NewPageFetcher()
	if err != nil {
		return fmt.Errorf("create http client: %w", err)
	}

	if statePath == "" {
		statePath = rt.StateFile
	}
	store := state.NewStore(statePath)
	notifier := notify.NewPushover(creds.UserKey, creds.APIToken)

	runner := monitor.NewRunner(targets, fetcher, notifier, store)
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	var inStock, notified int
	for _, r := range results {
		if r.Status == classifier.InStock {
			inStock++
		}
		if r.Notified {
			notified++
		}
	}
	logging.Info().
		Int("checked", len(results)).
		Int("in_stock", inStock).
		Int("notified", notified).
		Msg("run complete")

	return nil
}
