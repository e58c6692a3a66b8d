package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
)

// Storages aggregates every repository the server needs together with the
// connection pool they share.
type Storages struct {
	SubscriptionRepository SubscriptionRepository
	DB                     *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories on top of the resulting pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		SubscriptionRepository: NewSubscriptionRepository(db, log),
		DB:                     db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil {
		return nil
	}
	return s.DB.Close()
}
