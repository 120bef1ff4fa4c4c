package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the driver it was opened
// with and an error classifier for the connection phase.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver returns the database/sql driver name the connection was opened with
// ("pgx" or "sqlite3"). It doubles as the goose migration dialect.
func (db *DB) Driver() string {
	return db.driver
}

// NewConnect opens the relational store selected by the DSN and verifies the
// connection with a retried ping.
//
// DSN dispatch: values in PostgreSQL URL or key=value form connect via the
// pgx stdlib driver; any other non-empty value is treated as an SQLite file
// path (created on first start), matching the original single-file deployment.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := "sqlite3"
	if isPostgresDSN(cfg.DSN) {
		driver = "pgx"
	}

	if driver == "sqlite3" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	db := &DB{
		DB:                 conn,
		driver:             driver,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err := db.pingWithRetry(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return db, nil
}

// pingWithRetry pings the database with exponential backoff. Transient
// connection-phase errors (per the classifier) are retried; anything
// classified non-retryable aborts immediately.
func (db *DB) pingWithRetry(ctx context.Context) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}

		// Driver-agnostic dial errors carry no pg code; give them the
		// benefit of the doubt during startup.
		if !isPgError(err) {
			return retry.RetryableError(err)
		}

		return err
	})
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
