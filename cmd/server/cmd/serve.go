package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"passwordy/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Запустить HTTP API",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
		defer stop()

		app, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}

		return app.Run(ctx)
	},
}
