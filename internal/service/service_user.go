// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SyncFromWebhook mirrors user.created, user.updated and user.deleted.
// Deleting an unknown user succeeds; other event types are ignored.
func (u *userService) SyncFromWebhook(ctx context.Context, event models.UserWebhookEvent) error {
	log := logger.FromContext(ctx).With().
		Str("type", event.Type).
		Str("clerk_id", event.Data.ID).
		Logger()

	if event.Data.ID == "" {
		log.Error().Msg("user webhook without user id")
		return fmt.Errorf("%w: missing user id", ErrInvalidDataProvided)
	}

	switch event.Type {
	case models.UserCreated, models.UserUpdated:
		user := models.User{
			ClerkID:  event.Data.ID,
			Name:     event.Data.FullName(),
			ImageURL: event.Data.ImageURL,
		}
		if _, err := u.userRepository.UpsertByClerkID(ctx, user); err != nil {
			log.Err(err).Msg("user upsert failed")
			return fmt.Errorf("user upsert failed: %w", err)
		}
		log.Info().Msg("user synced")

	case models.UserDeleted:
		err := u.userRepository.DeleteByClerkID(ctx, event.Data.ID)
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Msg("deleted user was never synced")
			return nil
		}
		if err != nil {
			log.Err(err).Msg("user deletion failed")
			return fmt.Errorf("user deletion failed: %w", err)
		}
		log.Info().Msg("user deleted")

	default:
		log.Debug().Msg("user webhook type ignored")
	}

	return nil
}

func (u *userService) GetChannel(ctx context.Context, userID, viewerID string) (models.Channel, error) {
	channel, err := u.userRepository.GetChannel(ctx, userID, viewerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("channel lookup failed")
		return models.Channel{}, fmt.Errorf("channel lookup failed: %w", err)
	}
	return channel, nil
}
