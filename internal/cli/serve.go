package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/api"
	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/config"
	"github.com/gridpush/gridpush/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The store and cache backends come from the config file (the default
location is the user config directory). The server runs until interrupted
and shuts down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: user config dir)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	st, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ca, keyer, err := cache.Open(cfg.CacheOptions())
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer ca.Close()

	srv := api.NewServer(api.Options{
		Addr:   addr,
		Store:  st,
		Cache:  ca,
		Keyer:  keyer,
		Logger: c.Logger,
	})

	c.Logger.Info("Starting server", "addr", addr, "store", cfg.Store.Backend, "cache", cfg.Cache.Backend)
	return srv.Start(ctx)
}
