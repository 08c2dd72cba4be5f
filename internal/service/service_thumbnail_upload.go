package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

type thumbnailUploadService struct {
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage

	maxSize int64

	logger *logger.Logger
}

func NewThumbnailUploadService(videoRepository store.VideoRepository, objectStorage store.ObjectStorage, cfg config.App, logger *logger.Logger) ThumbnailUploadService {
	return &thumbnailUploadService{
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		maxSize:         cfg.MaxThumbnailBytes(),
		logger:          logger,
	}
}

func (t *thumbnailUploadService) MaxSize() int64 {
	return t.maxSize
}

// Upload stores file as the new thumbnail of the caller's video. Only
// images are accepted; the type is sniffed from the content, not taken from
// the client. The previous object is removed only once the row points at
// the new one.
func (t *thumbnailUploadService) Upload(ctx context.Context, userID, videoID string, file models.UploadedFile) (models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*thumbnailUploadService.Upload").Str("video_id", videoID).Logger()

	video, err := t.videoRepository.FindByIDAndUser(ctx, videoID, userID)
	if err != nil {
		log.Err(err).Msg("video lookup failed")
		return models.Video{}, fmt.Errorf("video lookup failed: %w", err)
	}

	if file.Body == nil {
		return models.Video{}, fmt.Errorf("%w: empty file", ErrInvalidDataProvided)
	}
	if t.maxSize > 0 && file.Size > t.maxSize {
		return models.Video{}, t.tooLarge()
	}

	body := file.Body
	if t.maxSize > 0 {
		body = io.LimitReader(file.Body, t.maxSize+1)
	}
	content, err := io.ReadAll(body)
	if err != nil {
		log.Err(err).Msg("reading upload failed")
		return models.Video{}, fmt.Errorf("reading upload failed: %w", err)
	}
	if t.maxSize > 0 && int64(len(content)) > t.maxSize {
		return models.Video{}, t.tooLarge()
	}

	detected := mimetype.Detect(content)
	if !strings.HasPrefix(detected.String(), "image/") {
		log.Warn().Str("mimetype", detected.String()).Msg("rejected thumbnail type")
		return models.Video{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, detected.String())
	}

	stored, err := t.objectStorage.Upload(ctx, file.Name, bytes.NewReader(content), detected.String())
	if err != nil {
		log.Err(err).Msg("storing thumbnail failed")
		return models.Video{}, fmt.Errorf("storing thumbnail failed: %w", err)
	}

	updated, err := t.videoRepository.UpdateThumbnail(ctx, userID, videoID, models.VideoThumbnail{
		URL: ptr(stored.URL),
		Key: ptr(stored.Key),
	})
	if err != nil {
		log.Err(err).Msg("saving thumbnail failed")
		if derr := t.objectStorage.Delete(ctx, stored.Key); derr != nil {
			log.Err(derr).Str("key", stored.Key).Msg("removing orphaned thumbnail failed")
		}
		return models.Video{}, fmt.Errorf("saving thumbnail failed: %w", err)
	}

	// the row no longer references the old object
	if video.ThumbnailKey != nil && *video.ThumbnailKey != "" && *video.ThumbnailKey != stored.Key {
		if err = t.objectStorage.Delete(ctx, *video.ThumbnailKey); err != nil {
			log.Err(err).Str("key", *video.ThumbnailKey).Msg("removing old thumbnail failed")
		}
	}

	return updated, nil
}

func (t *thumbnailUploadService) tooLarge() error {
	return fmt.Errorf("%w: limit is %s", ErrFileTooLarge, humanize.Bytes(uint64(t.maxSize)))
}
