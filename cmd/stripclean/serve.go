package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"greg-hacke/stripclean/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, logger).Run(runCtx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override server.port")
	return cmd
}
