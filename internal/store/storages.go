package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/migrations"
)

// Storages bundles every persistence dependency of the service layer.
type Storages struct {
	UserRepository       UserRepository
	ItemRepository       ItemRepository
	ResetTokenRepository ResetTokenRepository
	SessionRepository    SessionRepository
	ImageStore           ImageStore

	db *DB
}

// NewStorages connects to the database selected by the configuration, applies
// pending migrations and constructs all repositories over the shared
// connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB, db.Driver()); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	imageStore, err := NewImageFileStorage(cfg.Files.ImageDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ItemRepository:       NewItemRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
		SessionRepository:    NewSessionRepository(db, log),
		ImageStore:           imageStore,
		db:                   db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
