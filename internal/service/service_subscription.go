package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type subscriptionService struct {
	subscriptionRepository store.SubscriptionRepository

	logger *logger.Logger
}

func NewSubscriptionService(subscriptionRepository store.SubscriptionRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		logger:                 logger,
	}
}

func (s *subscriptionService) Create(ctx context.Context, viewerID, creatorID string) (models.Subscription, error) {
	if viewerID == creatorID {
		return models.Subscription{}, ErrSelfSubscription
	}

	subscription, err := s.subscriptionRepository.Create(ctx, viewerID, creatorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*subscriptionService.Create").
			Str("creator_id", creatorID).
			Msg("subscription creation failed")
		return models.Subscription{}, fmt.Errorf("subscription creation failed: %w", err)
	}

	return subscription, nil
}

func (s *subscriptionService) Remove(ctx context.Context, viewerID, creatorID string) (models.Subscription, error) {
	if viewerID == creatorID {
		return models.Subscription{}, ErrSelfSubscription
	}

	subscription, err := s.subscriptionRepository.Delete(ctx, viewerID, creatorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*subscriptionService.Remove").
			Str("creator_id", creatorID).
			Msg("subscription removal failed")
		return models.Subscription{}, fmt.Errorf("subscription removal failed: %w", err)
	}

	return subscription, nil
}
