package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bankist/internal/clock"
	"bankist/internal/http"
	"bankist/internal/session"
)

func newServeCmd(seedFile *string) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the session engine behind the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			a, err := newApp(ctx, *seedFile)
			if err != nil {
				return err
			}
			defer a.close()

			if address != "" {
				a.config.HTTP.Address = address
			}

			a.logger.InfoContext(ctx, "Starting application", "store", a.config.Store)

			events := http.NewEventLog(a.config.HTTP.EventBuffer)
			engine := session.NewEngine(a.repository, events, a.logger, clock.Real(), a.config.Session)
			httpServer := http.NewServer(engine, events, a.logger, a.config.HTTP)

			if err = httpServer.Start(ctx); err != nil {
				return err
			}

			<-stop

			a.logger.InfoContext(ctx, "Shutting down...")

			engine.Shutdown(ctx)
			if err = httpServer.Stop(ctx); err != nil {
				a.logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
			}

			a.logger.InfoContext(ctx, "Application shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "addr", "", "listen address (overrides HTTP_ADDRESS)")

	return cmd
}
