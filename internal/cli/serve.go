package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/internal/server"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and pane insertions over HTTP",
		Long: `Serve layouts and pane insertions over HTTP.

Routes:
  POST /v1/layout         {"graph": {...}, "options": {...}}
  POST /v1/panes/insert   {"tree": {...}, "pane": {...}, "target": {...}}
  GET  /healthz

The [server] and [cache] tables of --config configure limits and the
cache backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			backend := cfg.Cache.Backend
			if noCache {
				backend = pipeline.CacheNone
			}
			printInfo("Starting API server")
			printKeyValue("Address", cfg.Server.Addr)
			printKeyValue("Cache", backend)

			return server.New(runner, cfg, loggerFromContext(ctx)).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
