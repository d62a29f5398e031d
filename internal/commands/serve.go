package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runway-dev/runway/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var addr, static string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API and web assets over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.Config{
				Addr:      a.cfg.Server.Addr,
				StaticDir: a.cfg.Server.StaticDir,
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if static != "" {
				cfg.StaticDir = static
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, a.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from runway.yaml)")
	cmd.Flags().StringVar(&static, "static", "", "directory of web assets to serve")

	return cmd
}
