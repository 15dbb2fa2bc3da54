package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/balustrade/internal/server"
	"github.com/matzehuels/balustrade/pkg/cache"
)

// serveCommand creates the serve command for the JSON HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the spacing calculator as a JSON HTTP API",
		Long: `Serve the spacing calculator as a JSON HTTP API.

Routes:
  POST /v1/solve            {"span": 42, "thickness": "1½"}  (?all=true lists every layout)
  GET  /v1/fraction/parse   ?text=1+1/2
  GET  /v1/fraction/format  ?value=2.125&unit=16
  GET  /healthz

With the redis cache backend, several servers share solve results.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			if rc, ok := runner.Cache.(*cache.RedisCache); ok {
				if err := rc.Ping(ctx); err != nil {
					logger.Warn("redis unreachable, results will not be shared", "err", err)
				}
			}

			prog := newProgress(logger)
			if err := server.New(runner, logger, c.Config.MinSpan).Run(ctx, addr); err != nil {
				return err
			}
			prog.done("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
