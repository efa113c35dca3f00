package main

import (
	"context"
	"fmt"
	"log"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/config"
	dbconnection "AmHughesAbsalom/SPORTSHUB_TRACKER.git/db_connection"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/logger"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/service"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	cfg        *config.Config
	logg       *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:     "sportshub",
	Short:   "Sports results and standings tracker",
	Long:    `Tracks football and table tennis results, derives league tables and serves them as a JSON API.`,
	Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.LoadSecretsFromAWS(cmd.Context(), cfg); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}
		logg = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, standingsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// openDatabase connects to Postgres and wires the repositories.
func openDatabase() (service.Repositories, *sqlx.DB, error) {
	conn, db, err := dbconnection.NewDBConnection(cfg.Database)
	if err != nil {
		return service.Repositories{}, nil, err
	}
	return service.Repositories{
		Teams:        conn.TeamsDBConnection,
		Matches:      conn.MatchesDBConnection,
		Stats:        conn.MatchStatsDBConnection,
		Performances: conn.PlayerPerformancesDBConnection,
	}, db, nil
}
