// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-tube/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users mirrored from the identity provider.
type UserRepository interface {
	// UpsertByClerkID creates the user or refreshes its name and image.
	UpsertByClerkID(ctx context.Context, user models.User) (models.User, error)
	DeleteByClerkID(ctx context.Context, clerkID string) error
	FindByClerkID(ctx context.Context, clerkID string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// GetChannel returns the user with channel counters. viewerID may be
	// empty for anonymous viewers.
	GetChannel(ctx context.Context, userID, viewerID string) (models.Channel, error)
}

// CategoryRepository reads the fixed category list.
type CategoryRepository interface {
	GetMany(ctx context.Context) ([]models.Category, error)
}

// VideoRepository persists videos. Methods taking a userID only touch rows
// owned by that user.
type VideoRepository interface {
	Create(ctx context.Context, video models.Video) (models.Video, error)
	Update(ctx context.Context, userID string, update models.VideoUpdate) (models.Video, error)
	UpdateThumbnail(ctx context.Context, userID, id string, thumbnail models.VideoThumbnail) (models.Video, error)
	Delete(ctx context.Context, userID, id string) (models.Video, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (models.Video, error)

	// GetOne returns a public video, or a private one when viewerID owns it.
	GetOne(ctx context.Context, id, viewerID string) (models.VideoDetails, error)
	// GetMany lists public videos, newest first.
	GetMany(ctx context.Context, query models.VideoQuery) ([]models.VideoWithUser, error)
	// GetManyByUser lists every video of query.UserID, newest first.
	GetManyByUser(ctx context.Context, query models.VideoQuery) ([]models.Video, error)

	UpdateByUploadID(ctx context.Context, uploadID string, update models.VideoAssetUpdate) (models.Video, error)
	DeleteByUploadID(ctx context.Context, uploadID string) (models.Video, error)
	UpdateTrackByAssetID(ctx context.Context, assetID string, update models.VideoTrackUpdate) (models.Video, error)
}

// SubscriptionRepository persists viewer to creator subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, viewerID, creatorID string) (models.Subscription, error)
	Delete(ctx context.Context, viewerID, creatorID string) (models.Subscription, error)
}

// ObjectStorage stores thumbnails and previews and issues their public URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, name string, body io.Reader, contentType string) (models.StoredFile, error)
	UploadFromURL(ctx context.Context, url string) (models.StoredFile, error)
	Delete(ctx context.Context, keys ...string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
