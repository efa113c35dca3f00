package main

import (
	dbconnection "AmHughesAbsalom/SPORTSHUB_TRACKER.git/db_connection"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := dbconnection.Migrate(db, cfg.Database.MigrationsPath); err != nil {
			return err
		}
		logg.WithField("path", cfg.Database.MigrationsPath).Info("database schema is up to date")
		return nil
	},
}
