package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the problem API and the WebSocket quiz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := cfg.Logger(false)
		if err != nil {
			return err
		}
		defer closer.Close()
		logging.SetDefault(logger)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Options{
			Logger:      logger,
			Rand:        cfg.Rand(),
			DefaultPool: cfg.Pool,
		})
		return srv.ListenAndServe(ctx, cfg.ListenAddr)
	},
}
