package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository         UserRepository
	CategoryRepository     CategoryRepository
	VideoRepository        VideoRepository
	SubscriptionRepository SubscriptionRepository
	ObjectStorage          ObjectStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories, the object storage and the optional category cache.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	objects, err := NewObjectStorage(ctx, cfg.Storage.Objects, cfg.Adapter.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("object storage error: %w", err)
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		CategoryRepository:     NewCategoryCache(NewCategoryRepository(db, logger), cfg.Storage.Cache, logger),
		VideoRepository:        NewVideoRepository(db, logger),
		SubscriptionRepository: NewSubscriptionRepository(db, logger),
		ObjectStorage:          objects,
		db:                     db,
	}, nil
}

// Close releases the database pool and the cache connection.
func (s *Storages) Close() error {
	if closer, ok := s.CategoryRepository.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
