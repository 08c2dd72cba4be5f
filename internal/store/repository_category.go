package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// GetMany returns every category ordered by name.
func (r *categoryRepository) GetMany(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCategoriesQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetMany").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetMany").Msg("failed to query categories")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(categoryFields(&c)...); err != nil {
			log.Err(err).Str("func", "*categoryRepository.GetMany").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetMany").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}
