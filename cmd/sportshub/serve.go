package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbconnection "AmHughesAbsalom/SPORTSHUB_TRACKER.git/db_connection"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/service"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/web"

	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if migrateOnStart {
			if err := dbconnection.Migrate(db, cfg.Database.MigrationsPath); err != nil {
				return err
			}
		}

		tracker := service.NewTracker(repos, service.NewStandingsCache(cfg.Cache.StandingsTTL), logg)
		server := web.NewServer(cfg, tracker, logg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
}
