// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tube/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies identity-provider session tokens.
type AuthService interface {
	// ParseToken verifies the signature and claims of a session token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses the token and resolves the local user.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	// SyncFromWebhook mirrors a user lifecycle event of the identity provider.
	SyncFromWebhook(ctx context.Context, event models.UserWebhookEvent) error
	GetChannel(ctx context.Context, userID, viewerID string) (models.Channel, error)
}

// VideoService holds the video procedures. userID is always the caller;
// every mutation is scoped to the caller's videos.
type VideoService interface {
	Create(ctx context.Context, userID string) (models.CreatedVideo, error)
	Update(ctx context.Context, userID string, update models.VideoUpdate) (models.Video, error)
	Remove(ctx context.Context, userID, id string) (models.Video, error)
	RestoreThumbnail(ctx context.Context, userID, id string) (models.Video, error)

	GetOne(ctx context.Context, id, viewerID string) (models.VideoDetails, error)
	GetMany(ctx context.Context, query models.VideoQuery) (models.Page[models.VideoWithUser], error)

	GenerateTitle(ctx context.Context, userID, id string) (models.WorkflowRun, error)
	GenerateDescription(ctx context.Context, userID, id string) (models.WorkflowRun, error)
	GenerateThumbnail(ctx context.Context, userID string, prompt models.ThumbnailPrompt) (models.WorkflowRun, error)
}

// StudioService lists the caller's own videos, private ones included.
type StudioService interface {
	GetMany(ctx context.Context, userID string, page models.PageRequest) (models.Page[models.Video], error)
	GetOne(ctx context.Context, userID, id string) (models.Video, error)
}

type CategoryService interface {
	GetMany(ctx context.Context) ([]models.Category, error)
}

type SubscriptionService interface {
	Create(ctx context.Context, viewerID, creatorID string) (models.Subscription, error)
	Remove(ctx context.Context, viewerID, creatorID string) (models.Subscription, error)
}

// MuxWebhookService applies video provider callbacks.
type MuxWebhookService interface {
	Handle(ctx context.Context, event models.MuxWebhookEvent) error
}

// WorkflowService executes AI workflow runs step by step.
type WorkflowService interface {
	Run(ctx context.Context, req models.WorkflowRequest) error
}

// ThumbnailUploadService replaces a video thumbnail with a user upload.
type ThumbnailUploadService interface {
	Upload(ctx context.Context, userID, videoID string, file models.UploadedFile) (models.Video, error)
	MaxSize() int64
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
