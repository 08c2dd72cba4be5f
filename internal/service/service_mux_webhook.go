package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

// muxWebhookService maps provider asset events onto video rows. Rows are
// addressed by the direct upload id, except track events which only carry
// the asset id. The last event wins; nothing is reordered or deduplicated.
type muxWebhookService struct {
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage
	videoProvider   adapter.VideoProvider
	publisher       adapter.EventPublisher

	now    func() time.Time
	logger *logger.Logger
}

func NewMuxWebhookService(
	videoRepository store.VideoRepository,
	objectStorage store.ObjectStorage,
	videoProvider adapter.VideoProvider,
	publisher adapter.EventPublisher,
	logger *logger.Logger,
) MuxWebhookService {
	return &muxWebhookService{
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		videoProvider:   videoProvider,
		publisher:       publisher,
		now:             time.Now,
		logger:          logger,
	}
}

// Handle applies a single event. Unknown event types are ignored.
func (m *muxWebhookService) Handle(ctx context.Context, event models.MuxWebhookEvent) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*muxWebhookService.Handle").
		Str("type", event.Type).
		Str("event_id", event.ID).
		Logger()

	var err error
	switch event.Type {
	case models.MuxAssetCreated:
		err = m.assetCreated(ctx, event.Data)
	case models.MuxAssetReady:
		err = m.assetReady(ctx, event.Data)
	case models.MuxAssetErrored:
		err = m.assetErrored(ctx, event.Data)
	case models.MuxAssetDeleted:
		err = m.assetDeleted(ctx, event.Data)
	case models.MuxAssetTrackReady:
		err = m.trackReady(ctx, event.Data)
	default:
		log.Debug().Msg("webhook type ignored")
		return nil
	}
	if err != nil {
		log.Err(err).Msg("applying webhook failed")
		return err
	}

	m.publish(ctx, event)
	return nil
}

func (m *muxWebhookService) assetCreated(ctx context.Context, data models.MuxAssetData) error {
	if data.UploadID == "" {
		return ErrMissingUploadID
	}

	_, err := m.videoRepository.UpdateByUploadID(ctx, data.UploadID, models.VideoAssetUpdate{
		AssetID: ptr(data.ID),
		Status:  ptr(data.Status),
	})
	if err != nil {
		return fmt.Errorf("updating created asset failed: %w", err)
	}
	return nil
}

// assetReady copies the provider thumbnail and preview into object storage
// and stores the playback details.
func (m *muxWebhookService) assetReady(ctx context.Context, data models.MuxAssetData) error {
	playbackID := data.FirstPlaybackID()
	if playbackID == "" {
		return ErrMissingPlaybackID
	}
	if data.UploadID == "" {
		return ErrMissingUploadID
	}

	thumbnail, err := m.objectStorage.UploadFromURL(ctx, m.videoProvider.ThumbnailURL(playbackID))
	if err != nil {
		return fmt.Errorf("uploading thumbnail failed: %w", err)
	}
	preview, err := m.objectStorage.UploadFromURL(ctx, m.videoProvider.PreviewURL(playbackID))
	if err != nil {
		m.discard(ctx, thumbnail.Key)
		return fmt.Errorf("uploading preview failed: %w", err)
	}

	duration := models.DefaultDuration
	if data.Duration != nil {
		duration = int64(math.Round(*data.Duration * 1000))
	}

	_, err = m.videoRepository.UpdateByUploadID(ctx, data.UploadID, models.VideoAssetUpdate{
		AssetID:      ptr(data.ID),
		Status:       ptr(data.Status),
		PlaybackID:   ptr(playbackID),
		ThumbnailURL: ptr(thumbnail.URL),
		ThumbnailKey: ptr(thumbnail.Key),
		PreviewURL:   ptr(preview.URL),
		PreviewKey:   ptr(preview.Key),
		Duration:     ptr(duration),
	})
	if err != nil {
		m.discard(ctx, thumbnail.Key, preview.Key)
		return fmt.Errorf("updating ready asset failed: %w", err)
	}
	return nil
}

func (m *muxWebhookService) assetErrored(ctx context.Context, data models.MuxAssetData) error {
	if data.UploadID == "" {
		return ErrMissingUploadID
	}

	_, err := m.videoRepository.UpdateByUploadID(ctx, data.UploadID, models.VideoAssetUpdate{
		Status: ptr(data.Status),
	})
	if err != nil {
		return fmt.Errorf("updating errored asset failed: %w", err)
	}
	return nil
}

func (m *muxWebhookService) assetDeleted(ctx context.Context, data models.MuxAssetData) error {
	if data.UploadID == "" {
		return ErrMissingUploadID
	}

	removed, err := m.videoRepository.DeleteByUploadID(ctx, data.UploadID)
	if err != nil {
		return fmt.Errorf("deleting asset video failed: %w", err)
	}
	m.discard(ctx, removed.ObjectKeys()...)
	return nil
}

func (m *muxWebhookService) trackReady(ctx context.Context, data models.MuxAssetData) error {
	if data.AssetID == "" {
		return ErrMissingAssetID
	}

	_, err := m.videoRepository.UpdateTrackByAssetID(ctx, data.AssetID, models.VideoTrackUpdate{
		TrackID:     data.ID,
		TrackStatus: data.Status,
	})
	if err != nil {
		return fmt.Errorf("updating track failed: %w", err)
	}
	return nil
}

// discard removes objects that no row references any more.
func (m *muxWebhookService) discard(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := m.objectStorage.Delete(ctx, keys...); err != nil && !errors.Is(err, store.ErrObjectStorageDisabled) {
		logger.FromContext(ctx).Err(err).Str("func", "*muxWebhookService.discard").Strs("keys", keys).Msg("removing objects failed")
	}
}

// publish announces the applied event. A broker failure never fails the
// webhook: the row is already updated.
func (m *muxWebhookService) publish(ctx context.Context, event models.MuxWebhookEvent) {
	statusEvent := models.VideoStatusEvent{
		Type:       event.Type,
		UploadID:   event.Data.UploadID,
		AssetID:    event.Data.ID,
		Status:     event.Data.Status,
		OccurredAt: event.CreatedAt,
	}
	if event.Type == models.MuxAssetTrackReady {
		statusEvent.AssetID = event.Data.AssetID
	}
	if statusEvent.OccurredAt.IsZero() {
		statusEvent.OccurredAt = m.now().UTC()
	}

	if err := m.publisher.Publish(ctx, statusEvent); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*muxWebhookService.publish").Str("type", event.Type).Msg("publishing status event failed")
	}
}
