package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/stockroom-app/inventory/internal/controllers"
	"github.com/stockroom-app/inventory/internal/models"
	"github.com/stockroom-app/inventory/internal/router"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), version)
		},
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM is received.
func serve(ctx context.Context, version string) error {
	cfg, db, err := connect()
	if err != nil {
		return err
	}
	defer func() {
		if err := models.Close(db); err != nil {
			log.Error().Err(err).Msg("Closing the database failed")
		}
	}()

	err = models.Migrate(db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Without the database, no request can be served. Exiting lets the
	// supervisor restart the process.
	go models.Watch(ctx, db, cfg.DBWatchInterval, func(err error) {
		log.Fatal().Err(err).Msg("Database connection lost")
	})

	r, teardown, err := router.Config(router.Options{
		SessionSecret:    cfg.SessionSecret,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:      cfg.EnablePprof,
	})
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(controllers.New(db, cfg.AdminPassword, version), r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
