package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertByClerkID inserts the user or, when the clerk id is known, refreshes
// its name and image. Returns the stored row.
func (r *userRepository) UpsertByClerkID(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserQuery(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertByClerkID").Msg("failed to create query")
		return models.User{}, err
	}

	var saved models.User
	if err = r.QueryRowContext(ctx, query, args...).Scan(userFields(&saved)...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertByClerkID").Str("clerk_id", user.ClerkID).Msg("failed to upsert user")
		return models.User{}, r.queryError(err)
	}

	return saved, nil
}

// DeleteByClerkID removes the user; videos and subscriptions cascade.
func (r *userRepository) DeleteByClerkID(ctx context.Context, clerkID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserByClerkIDQuery(ctx, clerkID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByClerkID").Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByClerkID").Str("clerk_id", clerkID).Msg("failed to delete user")
		return r.queryError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) FindByClerkID(ctx context.Context, clerkID string) (models.User, error) {
	return r.findBy(ctx, "clerk_id", clerkID)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(ctx, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Msg("failed to create query")
		return models.User{}, err
	}

	var user models.User
	if err = r.QueryRowContext(ctx, query, args...).Scan(userFields(&user)...); err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Str(column, value).Msg("failed to find user")
		return models.User{}, r.rowError(err, ErrUserNotFound)
	}

	return user, nil
}

// GetChannel returns the user with its public video and subscriber counts.
func (r *userRepository) GetChannel(ctx context.Context, userID, viewerID string) (models.Channel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetChannelQuery(ctx, userID, viewerID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetChannel").Msg("failed to create query")
		return models.Channel{}, err
	}

	var channel models.Channel
	dest := append(userFields(&channel.User), &channel.VideoCount, &channel.SubscriberCount, &channel.ViewerSubscribed)
	if err = r.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		log.Err(err).Str("func", "*userRepository.GetChannel").Str("user_id", userID).Msg("failed to get channel")
		return models.Channel{}, r.rowError(err, ErrUserNotFound)
	}

	return channel, nil
}
