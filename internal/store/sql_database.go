package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/migrations"
)

// DB wraps the connection pool together with the error classifier used by
// repositories to decide on retries.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// PingContext verifies the connection to the database is still alive.
func (db *DB) PingContext(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the pool. It is safe to call on a nil *DB.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	db.logger.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
