package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/phonecustody/internal/database"
	"github.com/deppfellow/phonecustody/internal/handler"
	"github.com/deppfellow/phonecustody/internal/repository"
	"github.com/deppfellow/phonecustody/internal/router"
	"github.com/deppfellow/phonecustody/internal/server"
	"github.com/deppfellow/phonecustody/internal/service"
)

const defaultShutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var (
		migrate         bool
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the notification worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if migrate {
				if err := database.Migrate(cmd.Context(), log, cfg.Database.DSN()); err != nil {
					log.Error().Err(err).Msg("failed to migrate database")
					return err
				}
			}

			srv, err := server.New(cfg, log, loggerService)
			if err != nil {
				log.Error().Err(err).Msg("failed to initialize server")
				return err
			}

			repos := repository.NewRepositories(srv)
			services, err := service.NewServices(srv, repos)
			if err != nil {
				log.Error().Err(err).Msg("could not create services")
				return err
			}

			handlers := handler.NewHandlers(srv, services)
			srv.SetupHTTPServer(router.NewRouter(srv, handlers))

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			var serveErr error
			select {
			case sig := <-sigCh:
				log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
			case serveErr = <-errCh:
				if serveErr != nil {
					log.Error().Err(serveErr).Msg("server stopped unexpectedly")
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return err
			}

			log.Info().Msg("server exited properly")
			return serveErr
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "grace period for in-flight requests")

	return cmd
}
