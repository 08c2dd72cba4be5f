package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (c *categoryService) GetMany(ctx context.Context) ([]models.Category, error) {
	categories, err := c.categoryRepository.GetMany(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.GetMany").Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}
	return categories, nil
}
