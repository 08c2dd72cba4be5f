package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type studioService struct {
	videoRepository store.VideoRepository

	logger *logger.Logger
}

func NewStudioService(videoRepository store.VideoRepository, logger *logger.Logger) StudioService {
	return &studioService{
		videoRepository: videoRepository,
		logger:          logger,
	}
}

func (s *studioService) GetMany(ctx context.Context, userID string, page models.PageRequest) (models.Page[models.Video], error) {
	videos, err := s.videoRepository.GetManyByUser(ctx, models.VideoQuery{PageRequest: page, UserID: userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*studioService.GetMany").Str("user_id", userID).Msg("studio listing failed")
		return models.Page[models.Video]{}, fmt.Errorf("studio listing failed: %w", err)
	}

	return models.NewPage(videos, page.EffectiveLimit(), cursorOf), nil
}

func (s *studioService) GetOne(ctx context.Context, userID, id string) (models.Video, error) {
	video, err := s.videoRepository.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*studioService.GetOne").Str("id", id).Msg("studio video lookup failed")
		return models.Video{}, fmt.Errorf("studio video lookup failed: %w", err)
	}
	return video, nil
}
