// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/mock"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type muxWebhookMocks struct {
	videos    *mock.MockVideoRepository
	objects   *mock.MockObjectStorage
	provider  *mock.MockVideoProvider
	publisher *mock.MockEventPublisher
}

func newTestMuxWebhookService(t *testing.T) (*muxWebhookService, muxWebhookMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := muxWebhookMocks{
		videos:    mock.NewMockVideoRepository(ctrl),
		objects:   mock.NewMockObjectStorage(ctrl),
		provider:  mock.NewMockVideoProvider(ctrl),
		publisher: mock.NewMockEventPublisher(ctrl),
	}
	svc := NewMuxWebhookService(m.videos, m.objects, m.provider, m.publisher, logger.Nop()).(*muxWebhookService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, m
}

func TestMuxWebhookService_AssetCreated(t *testing.T) {
	svc, m := newTestMuxWebhookService(t)
	event := models.MuxWebhookEvent{
		Type: models.MuxAssetCreated,
		Data: models.MuxAssetData{ID: "asset-1", Status: "preparing", UploadID: "upload-1"},
	}

	gomock.InOrder(
		m.videos.EXPECT().UpdateByUploadID(gomock.Any(), "upload-1", models.VideoAssetUpdate{
			AssetID: ptr("asset-1"),
			Status:  ptr("preparing"),
		}).Return(models.Video{ID: videoID}, nil),
		m.publisher.EXPECT().Publish(gomock.Any(), models.VideoStatusEvent{
			Type:       models.MuxAssetCreated,
			UploadID:   "upload-1",
			AssetID:    "asset-1",
			Status:     "preparing",
			OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}).Return(nil),
	)

	require.NoError(t, svc.Handle(context.Background(), event))
}

func TestMuxWebhookService_AssetReady(t *testing.T) {
	duration := 61.4996
	event := models.MuxWebhookEvent{
		Type:      models.MuxAssetReady,
		CreatedAt: time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
		Data: models.MuxAssetData{
			ID:          "asset-1",
			Status:      "ready",
			UploadID:    "upload-1",
			Duration:    &duration,
			PlaybackIDs: []models.MuxPlaybackID{{ID: "pb-1", Policy: "public"}},
		},
	}

	t.Run("copies images and stores playback details", func(t *testing.T) {
		svc, m := newTestMuxWebhookService(t)

		m.provider.EXPECT().ThumbnailURL("pb-1").Return("https://image.mux.com/pb-1/thumbnail.jpg")
		m.provider.EXPECT().PreviewURL("pb-1").Return("https://image.mux.com/pb-1/animated.gif")
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "https://image.mux.com/pb-1/thumbnail.jpg").
			Return(models.StoredFile{Key: "t.jpg", URL: "https://cdn/t.jpg"}, nil)
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "https://image.mux.com/pb-1/animated.gif").
			Return(models.StoredFile{Key: "p.gif", URL: "https://cdn/p.gif"}, nil)
		m.videos.EXPECT().UpdateByUploadID(gomock.Any(), "upload-1", models.VideoAssetUpdate{
			AssetID:      ptr("asset-1"),
			Status:       ptr("ready"),
			PlaybackID:   ptr("pb-1"),
			ThumbnailURL: ptr("https://cdn/t.jpg"),
			ThumbnailKey: ptr("t.jpg"),
			PreviewURL:   ptr("https://cdn/p.gif"),
			PreviewKey:   ptr("p.gif"),
			Duration:     ptr(int64(61_500)),
		}).Return(models.Video{ID: videoID}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.VideoStatusEvent) error {
				assert.Equal(t, event.CreatedAt, e.OccurredAt)
				assert.Equal(t, "upload-1", e.Key())
				return nil
			})

		require.NoError(t, svc.Handle(context.Background(), event))
	})

	t.Run("missing duration stores default", func(t *testing.T) {
		svc, m := newTestMuxWebhookService(t)
		noDuration := event
		noDuration.Data.Duration = nil

		m.provider.EXPECT().ThumbnailURL("pb-1").Return("thumb")
		m.provider.EXPECT().PreviewURL("pb-1").Return("preview")
		m.objects.EXPECT().UploadFromURL(gomock.Any(), gomock.Any()).Return(models.StoredFile{Key: "k"}, nil).Times(2)
		m.videos.EXPECT().UpdateByUploadID(gomock.Any(), "upload-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u models.VideoAssetUpdate) (models.Video, error) {
				require.NotNil(t, u.Duration)
				assert.Equal(t, models.DefaultDuration, *u.Duration)
				return models.Video{}, nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Handle(context.Background(), noDuration))
	})

	t.Run("unknown upload discards copied objects", func(t *testing.T) {
		svc, m := newTestMuxWebhookService(t)

		m.provider.EXPECT().ThumbnailURL("pb-1").Return("thumb")
		m.provider.EXPECT().PreviewURL("pb-1").Return("preview")
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "thumb").Return(models.StoredFile{Key: "t.jpg"}, nil)
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "preview").Return(models.StoredFile{Key: "p.gif"}, nil)
		m.videos.EXPECT().UpdateByUploadID(gomock.Any(), "upload-1", gomock.Any()).Return(models.Video{}, store.ErrVideoNotFound)
		m.objects.EXPECT().Delete(gomock.Any(), "t.jpg", "p.gif").Return(nil)

		err := svc.Handle(context.Background(), event)
		require.ErrorIs(t, err, store.ErrVideoNotFound)
	})

	t.Run("preview failure discards thumbnail", func(t *testing.T) {
		svc, m := newTestMuxWebhookService(t)

		m.provider.EXPECT().ThumbnailURL("pb-1").Return("thumb")
		m.provider.EXPECT().PreviewURL("pb-1").Return("preview")
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "thumb").Return(models.StoredFile{Key: "t.jpg"}, nil)
		m.objects.EXPECT().UploadFromURL(gomock.Any(), "preview").Return(models.StoredFile{}, store.ErrUploadingObject)
		m.objects.EXPECT().Delete(gomock.Any(), "t.jpg").Return(nil)

		err := svc.Handle(context.Background(), event)
		require.ErrorIs(t, err, store.ErrUploadingObject)
	})

	t.Run("missing playback id", func(t *testing.T) {
		svc, _ := newTestMuxWebhookService(t)
		noPlayback := event
		noPlayback.Data.PlaybackIDs = nil

		require.ErrorIs(t, svc.Handle(context.Background(), noPlayback), ErrMissingPlaybackID)
	})

	t.Run("missing upload id", func(t *testing.T) {
		svc, _ := newTestMuxWebhookService(t)
		noUpload := event
		noUpload.Data.UploadID = ""

		require.ErrorIs(t, svc.Handle(context.Background(), noUpload), ErrMissingUploadID)
	})
}

func TestMuxWebhookService_AssetErrored(t *testing.T) {
	svc, m := newTestMuxWebhookService(t)

	m.videos.EXPECT().UpdateByUploadID(gomock.Any(), "upload-1", models.VideoAssetUpdate{Status: ptr("errored")}).
		Return(models.Video{}, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := svc.Handle(context.Background(), models.MuxWebhookEvent{
		Type: models.MuxAssetErrored,
		Data: models.MuxAssetData{ID: "asset-1", Status: "errored", UploadID: "upload-1"},
	})
	require.NoError(t, err, "publish failures are only logged")
}

func TestMuxWebhookService_AssetDeleted(t *testing.T) {
	svc, m := newTestMuxWebhookService(t)
	thumb, preview := "t.jpg", "p.gif"

	gomock.InOrder(
		m.videos.EXPECT().DeleteByUploadID(gomock.Any(), "upload-1").
			Return(models.Video{ID: videoID, ThumbnailKey: &thumb, PreviewKey: &preview}, nil),
		m.objects.EXPECT().Delete(gomock.Any(), thumb, preview).Return(store.ErrObjectStorageDisabled),
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, svc.Handle(context.Background(), models.MuxWebhookEvent{
		Type: models.MuxAssetDeleted,
		Data: models.MuxAssetData{ID: "asset-1", UploadID: "upload-1"},
	}))
}

func TestMuxWebhookService_TrackReady(t *testing.T) {
	t.Run("updates track by asset id", func(t *testing.T) {
		svc, m := newTestMuxWebhookService(t)

		m.videos.EXPECT().UpdateTrackByAssetID(gomock.Any(), "asset-1", models.VideoTrackUpdate{
			TrackID:     "track-1",
			TrackStatus: "ready",
		}).Return(models.Video{}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.VideoStatusEvent) error {
				assert.Equal(t, "asset-1", e.AssetID)
				assert.Equal(t, "asset-1", e.Key())
				return nil
			})

		require.NoError(t, svc.Handle(context.Background(), models.MuxWebhookEvent{
			Type: models.MuxAssetTrackReady,
			Data: models.MuxAssetData{ID: "track-1", Status: "ready", AssetID: "asset-1"},
		}))
	})

	t.Run("missing asset id", func(t *testing.T) {
		svc, _ := newTestMuxWebhookService(t)

		err := svc.Handle(context.Background(), models.MuxWebhookEvent{
			Type: models.MuxAssetTrackReady,
			Data: models.MuxAssetData{ID: "track-1"},
		})
		require.ErrorIs(t, err, ErrMissingAssetID)
	})
}

func TestMuxWebhookService_UploadIDRequired(t *testing.T) {
	for _, eventType := range []string{models.MuxAssetCreated, models.MuxAssetErrored, models.MuxAssetDeleted} {
		t.Run(eventType, func(t *testing.T) {
			svc, _ := newTestMuxWebhookService(t)

			err := svc.Handle(context.Background(), models.MuxWebhookEvent{Type: eventType, Data: models.MuxAssetData{ID: "asset-1"}})
			require.ErrorIs(t, err, ErrMissingUploadID)
		})
	}
}

func TestMuxWebhookService_UnknownTypeIgnored(t *testing.T) {
	svc, _ := newTestMuxWebhookService(t)

	require.NoError(t, svc.Handle(context.Background(), models.MuxWebhookEvent{Type: "video.live_stream.idle"}))
}
