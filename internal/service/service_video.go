package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// videoService implements the video procedures on top of the video
// repository, the object storage and the video provider. AI generation is
// handed to a WorkflowTrigger; the service never waits for a run to finish.
type videoService struct {
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage
	videoProvider   adapter.VideoProvider
	workflowTrigger adapter.WorkflowTrigger

	logger *logger.Logger
}

func NewVideoService(
	videoRepository store.VideoRepository,
	objectStorage store.ObjectStorage,
	videoProvider adapter.VideoProvider,
	workflowTrigger adapter.WorkflowTrigger,
	logger *logger.Logger,
) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		videoProvider:   videoProvider,
		workflowTrigger: workflowTrigger,
		logger:          logger,
	}
}

// Create opens a direct upload at the video provider and stores a
// placeholder row that the provider webhooks fill in later. The caller's id
// travels as passthrough so provider events can be traced back to the owner.
func (v *videoService) Create(ctx context.Context, userID string) (models.CreatedVideo, error) {
	log := logger.FromContext(ctx)

	upload, err := v.videoProvider.CreateUpload(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*videoService.Create").Str("user_id", userID).Msg("opening direct upload failed")
		return models.CreatedVideo{}, fmt.Errorf("opening direct upload failed: %w", err)
	}

	video, err := v.videoRepository.Create(ctx, models.Video{
		Title:       models.DefaultTitle,
		UserID:      userID,
		MuxStatus:   ptr(models.MuxStatusWaiting),
		MuxUploadID: ptr(upload.ID),
	})
	if err != nil {
		log.Err(err).Str("func", "*videoService.Create").Str("upload_id", upload.ID).Msg("video creation failed")
		return models.CreatedVideo{}, fmt.Errorf("video creation failed: %w", err)
	}

	return models.CreatedVideo{Video: video, URL: upload.URL}, nil
}

func (v *videoService) Update(ctx context.Context, userID string, update models.VideoUpdate) (models.Video, error) {
	if update.ID == "" {
		return models.Video{}, fmt.Errorf("%w: missing video id", ErrInvalidDataProvided)
	}

	video, err := v.videoRepository.Update(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoService.Update").Str("id", update.ID).Msg("video update failed")
		return models.Video{}, fmt.Errorf("video update failed: %w", err)
	}

	return video, nil
}

// Remove deletes the caller's video and then its stored objects. Object
// removal is best effort: the row is already gone.
func (v *videoService) Remove(ctx context.Context, userID, id string) (models.Video, error) {
	log := logger.FromContext(ctx)

	removed, err := v.videoRepository.Delete(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*videoService.Remove").Str("id", id).Msg("video deletion failed")
		return models.Video{}, fmt.Errorf("video deletion failed: %w", err)
	}

	if keys := removed.ObjectKeys(); len(keys) > 0 {
		if err = v.objectStorage.Delete(ctx, keys...); err != nil {
			log.Err(err).Str("func", "*videoService.Remove").Strs("keys", keys).Msg("removing video objects failed")
		}
	}

	return removed, nil
}

// RestoreThumbnail replaces the current thumbnail with the one generated by
// the video provider.
func (v *videoService) RestoreThumbnail(ctx context.Context, userID, id string) (models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*videoService.RestoreThumbnail").Str("id", id).Logger()

	video, err := v.videoRepository.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		log.Err(err).Msg("video lookup failed")
		return models.Video{}, fmt.Errorf("video lookup failed: %w", err)
	}

	if video.ThumbnailKey != nil && *video.ThumbnailKey != "" {
		if err = v.objectStorage.Delete(ctx, *video.ThumbnailKey); err != nil {
			log.Err(err).Str("key", *video.ThumbnailKey).Msg("removing old thumbnail failed")
		}
		if video, err = v.videoRepository.UpdateThumbnail(ctx, userID, id, models.VideoThumbnail{}); err != nil {
			log.Err(err).Msg("clearing thumbnail failed")
			return models.Video{}, fmt.Errorf("clearing thumbnail failed: %w", err)
		}
	}

	if video.MuxPlaybackID == nil || *video.MuxPlaybackID == "" {
		return models.Video{}, ErrVideoNotReady
	}

	stored, err := v.objectStorage.UploadFromURL(ctx, v.videoProvider.ThumbnailURL(*video.MuxPlaybackID))
	if err != nil {
		log.Err(err).Msg("uploading provider thumbnail failed")
		return models.Video{}, fmt.Errorf("uploading provider thumbnail failed: %w", err)
	}

	updated, err := v.videoRepository.UpdateThumbnail(ctx, userID, id, models.VideoThumbnail{
		URL: ptr(stored.URL),
		Key: ptr(stored.Key),
	})
	if err != nil {
		log.Err(err).Msg("saving thumbnail failed")
		return models.Video{}, fmt.Errorf("saving thumbnail failed: %w", err)
	}

	return updated, nil
}

// GetOne returns the video page. Private videos are only visible to their
// owner; viewerID is empty for anonymous viewers.
func (v *videoService) GetOne(ctx context.Context, id, viewerID string) (models.VideoDetails, error) {
	details, err := v.videoRepository.GetOne(ctx, id, viewerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoService.GetOne").Str("id", id).Msg("video lookup failed")
		return models.VideoDetails{}, fmt.Errorf("video lookup failed: %w", err)
	}

	if details.Description != nil {
		details.DescriptionHTML = utils.RenderDescription(*details.Description)
	}
	details.DurationLabel = utils.FormatDuration(details.Duration)
	if details.MuxStatus != nil {
		details.StatusLabel = utils.SnakeCaseToTitleCase(*details.MuxStatus)
	}

	return details, nil
}

func (v *videoService) GetMany(ctx context.Context, query models.VideoQuery) (models.Page[models.VideoWithUser], error) {
	videos, err := v.videoRepository.GetMany(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoService.GetMany").Msg("video listing failed")
		return models.Page[models.VideoWithUser]{}, fmt.Errorf("video listing failed: %w", err)
	}

	return models.NewPage(videos, query.EffectiveLimit(), func(item models.VideoWithUser) models.Cursor {
		return cursorOf(item.Video)
	}), nil
}

func (v *videoService) GenerateTitle(ctx context.Context, userID, id string) (models.WorkflowRun, error) {
	return v.trigger(ctx, models.WorkflowRequest{Kind: models.WorkflowTitle, UserID: userID, VideoID: id})
}

func (v *videoService) GenerateDescription(ctx context.Context, userID, id string) (models.WorkflowRun, error) {
	return v.trigger(ctx, models.WorkflowRequest{Kind: models.WorkflowDescription, UserID: userID, VideoID: id})
}

func (v *videoService) GenerateThumbnail(ctx context.Context, userID string, prompt models.ThumbnailPrompt) (models.WorkflowRun, error) {
	return v.trigger(ctx, models.WorkflowRequest{
		Kind:    models.WorkflowThumbnail,
		UserID:  userID,
		VideoID: prompt.ID,
		Prompt:  prompt.Prompt,
	})
}

// trigger checks that the caller owns the video before starting a run.
func (v *videoService) trigger(ctx context.Context, req models.WorkflowRequest) (models.WorkflowRun, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*videoService.trigger").
		Str("kind", string(req.Kind)).
		Str("video_id", req.VideoID).
		Logger()

	if _, err := v.videoRepository.FindByIDAndUser(ctx, req.VideoID, req.UserID); err != nil {
		log.Err(err).Msg("video lookup failed")
		return models.WorkflowRun{}, fmt.Errorf("video lookup failed: %w", err)
	}

	run, err := v.workflowTrigger.Trigger(ctx, req)
	if err != nil {
		log.Err(err).Msg("triggering workflow failed")
		return models.WorkflowRun{}, fmt.Errorf("triggering workflow failed: %w", err)
	}

	log.Info().Str("run_id", run.WorkflowRunID).Msg("workflow triggered")
	return run, nil
}

func cursorOf(v models.Video) models.Cursor {
	return models.Cursor{ID: v.ID, UpdatedAt: v.UpdatedAt}
}

func ptr[T any](v T) *T {
	return &v
}
