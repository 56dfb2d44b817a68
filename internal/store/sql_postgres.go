package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/leads-api/internal/config"
	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/migrations"

	// registers the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB pool. It is read-only after construction and
// safe for concurrent use.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// NewConnectPostgres opens the pool described by cfg and pings it once.
// Connection parameters are not validated beforehand, so a malformed
// configuration surfaces here.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.URL())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	db := NewDB(conn, log)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).
			Str("func", "NewConnectPostgres").
			Stringer("class", db.errorClassificator.Classify(err)).
			Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Msg("connected to database successfully")

	return db, nil
}

// Init creates all schema objects that do not exist yet. It is idempotent and
// does not retry: an unreachable database or rejected credentials are
// returned to the caller as is.
func (db *DB) Init(ctx context.Context) error {
	db.logger.Info().Msg("initializing database schema")

	if err := migrations.Migrate(ctx, db.DB, db.logger); err != nil {
		db.logger.Err(err).
			Str("func", "*DB.Init").
			Stringer("class", db.errorClassificator.Classify(err)).
			Msg("error initializing database schema")
		return fmt.Errorf("%w: %w", ErrInitializingSchema, err)
	}

	return nil
}
