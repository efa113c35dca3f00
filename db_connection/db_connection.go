package dbconnection

import (
	"errors"
	"fmt"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/config"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/queries"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type DBConnection struct {
	*queries.TeamsDBConnection
	*queries.MatchesDBConnection
	*queries.MatchStatsDBConnection
	*queries.PlayerPerformancesDBConnection
}

func NewDBConnection(cfg config.DatabaseConfig) (*DBConnection, *sqlx.DB, error) {
	db, connErr := sqlx.Open("postgres", cfg.DSN())
	if connErr != nil {
		return nil, &sqlx.DB{}, fmt.Errorf("failed to connect the database!...: %w", connErr)
	}
	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)

	if err := db.Ping(); err != nil {
		return nil, &sqlx.DB{}, fmt.Errorf("database connection failed!: %w", err)
	}

	return Wrap(db), db, nil
}

// Wrap builds the repositories on top of an already opened handle.
func Wrap(db *sqlx.DB) *DBConnection {
	return &DBConnection{
		TeamsDBConnection:              &queries.TeamsDBConnection{DB: db},
		MatchesDBConnection:            &queries.MatchesDBConnection{DB: db},
		MatchStatsDBConnection:         &queries.MatchStatsDBConnection{DB: db},
		PlayerPerformancesDBConnection: &queries.PlayerPerformancesDBConnection{DB: db},
	}
}

// Migrate applies every pending migration found in path. An up to date schema
// is not an error.
func Migrate(db *sqlx.DB, path string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("loading migrations from %s: %w", path, err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
