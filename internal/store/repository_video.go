package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
	"github.com/jackc/pgerrcode"
)

// videoRepository is the PostgreSQL-backed implementation of
// [VideoRepository]. Owner scoped methods filter on user_id so a user can
// never touch someone else's row; a miss is reported as [ErrVideoNotFound].
type videoRepository struct {
	*DB
	logger *logger.Logger
}

func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *videoRepository) Create(ctx context.Context, video models.Video) (models.Video, error) {
	query, args, err := buildCreateVideoQuery(ctx, video)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.Create").Msg("failed to create query")
		return models.Video{}, err
	}

	created, err := r.returningVideo(ctx, "*videoRepository.Create", query, args)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Video{}, ErrUserNotFound
		}
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return created, nil
}

// Update applies the non-nil fields of update to a video owned by userID.
func (r *videoRepository) Update(ctx context.Context, userID string, update models.VideoUpdate) (models.Video, error) {
	query, args, err := buildUpdateVideoQuery(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.Update").Msg("failed to create query")
		return models.Video{}, err
	}

	updated, err := r.returningVideo(ctx, "*videoRepository.Update", query, args)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Video{}, ErrCategoryNotFound
		}
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return updated, nil
}

// UpdateThumbnail sets the thumbnail columns; nil fields clear them.
func (r *videoRepository) UpdateThumbnail(ctx context.Context, userID, id string, thumbnail models.VideoThumbnail) (models.Video, error) {
	query, args, err := buildUpdateVideoThumbnailQuery(ctx, userID, id, thumbnail)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.UpdateThumbnail").Msg("failed to create query")
		return models.Video{}, err
	}

	updated, err := r.returningVideo(ctx, "*videoRepository.UpdateThumbnail", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return updated, nil
}

// Delete removes a video owned by userID and returns the removed row so the
// caller can clean up its objects.
func (r *videoRepository) Delete(ctx context.Context, userID, id string) (models.Video, error) {
	query, args, err := buildDeleteVideoQuery(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.Delete").Msg("failed to create query")
		return models.Video{}, err
	}

	removed, err := r.returningVideo(ctx, "*videoRepository.Delete", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return removed, nil
}

func (r *videoRepository) FindByIDAndUser(ctx context.Context, id, userID string) (models.Video, error) {
	query, args, err := buildFindVideoQuery(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.FindByIDAndUser").Msg("failed to create query")
		return models.Video{}, err
	}

	video, err := r.returningVideo(ctx, "*videoRepository.FindByIDAndUser", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return video, nil
}

// GetOne returns the video page: the video, its owner, the owner's
// subscriber count and whether viewerID follows the owner.
func (r *videoRepository) GetOne(ctx context.Context, id, viewerID string) (models.VideoDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetVideoQuery(ctx, id, viewerID)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetOne").Msg("failed to create query")
		return models.VideoDetails{}, err
	}

	var details models.VideoDetails
	dest := append(videoFields(&details.Video), userFields(&details.User.User)...)
	dest = append(dest, &details.User.SubscriberCount, &details.User.ViewerSubscribed)

	if err = r.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		log.Err(err).Str("func", "*videoRepository.GetOne").Str("video_id", id).Msg("failed to get video")
		return models.VideoDetails{}, r.rowError(err, ErrVideoNotFound)
	}

	return details, nil
}

// GetMany returns up to limit+1 public videos with their owners.
func (r *videoRepository) GetMany(ctx context.Context, query models.VideoQuery) ([]models.VideoWithUser, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildGetVideosQuery(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetMany").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetMany").Msg("failed to query videos")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	videos := make([]models.VideoWithUser, 0, query.EffectiveLimit()+1)
	for rows.Next() {
		var v models.VideoWithUser
		if err = rows.Scan(append(videoFields(&v.Video), userFields(&v.User)...)...); err != nil {
			log.Err(err).Str("func", "*videoRepository.GetMany").Msg("failed to scan video row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		videos = append(videos, v)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*videoRepository.GetMany").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return videos, nil
}

// GetManyByUser returns up to limit+1 videos of query.UserID, any visibility.
func (r *videoRepository) GetManyByUser(ctx context.Context, query models.VideoQuery) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildGetUserVideosQuery(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetManyByUser").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetManyByUser").Str("user_id", query.UserID).Msg("failed to query videos")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0, query.EffectiveLimit()+1)
	for rows.Next() {
		var v models.Video
		if err = rows.Scan(videoFields(&v)...); err != nil {
			log.Err(err).Str("func", "*videoRepository.GetManyByUser").Msg("failed to scan video row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		videos = append(videos, v)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*videoRepository.GetManyByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return videos, nil
}

// UpdateByUploadID applies a provider asset update to the row created for
// the direct upload.
func (r *videoRepository) UpdateByUploadID(ctx context.Context, uploadID string, update models.VideoAssetUpdate) (models.Video, error) {
	query, args, err := buildUpdateVideoByUploadIDQuery(ctx, uploadID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.UpdateByUploadID").Msg("failed to create query")
		return models.Video{}, err
	}

	updated, err := r.returningVideo(ctx, "*videoRepository.UpdateByUploadID", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return updated, nil
}

func (r *videoRepository) DeleteByUploadID(ctx context.Context, uploadID string) (models.Video, error) {
	query, args, err := buildDeleteVideoByUploadIDQuery(ctx, uploadID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.DeleteByUploadID").Msg("failed to create query")
		return models.Video{}, err
	}

	removed, err := r.returningVideo(ctx, "*videoRepository.DeleteByUploadID", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return removed, nil
}

// UpdateTrackByAssetID records a finished text track. Track events carry
// the asset id, not the upload id.
func (r *videoRepository) UpdateTrackByAssetID(ctx context.Context, assetID string, update models.VideoTrackUpdate) (models.Video, error) {
	query, args, err := buildUpdateVideoTrackQuery(ctx, assetID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*videoRepository.UpdateTrackByAssetID").Msg("failed to create query")
		return models.Video{}, err
	}

	updated, err := r.returningVideo(ctx, "*videoRepository.UpdateTrackByAssetID", query, args)
	if err != nil {
		return models.Video{}, r.rowError(err, ErrVideoNotFound)
	}

	return updated, nil
}

// returningVideo runs a statement yielding one video row. The raw error is
// returned so callers can map driver codes.
func (r *videoRepository) returningVideo(ctx context.Context, fn, query string, args []any) (models.Video, error) {
	var video models.Video
	if err := r.QueryRowContext(ctx, query, args...).Scan(videoFields(&video)...); err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", fn).Msg("video statement returned no row")
		} else {
			log.Err(err).Str("func", fn).Msg("video statement failed")
		}
		return models.Video{}, err
	}

	return video, nil
}
