package store

import (
	"context"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
	"github.com/jackc/pgerrcode"
)

type subscriptionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	logger.Debug().Msg("creating subscription repository")
	return &subscriptionRepository{
		DB:     db,
		logger: logger,
	}
}

// Create subscribes viewerID to creatorID.
//
// Error handling:
//   - unique_violation → [ErrSubscriptionExists]
//   - foreign_key_violation (unknown creator) → [ErrUserNotFound]
func (r *subscriptionRepository) Create(ctx context.Context, viewerID, creatorID string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSubscriptionQuery(ctx, viewerID, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.Create").Msg("failed to create query")
		return models.Subscription{}, err
	}

	var sub models.Subscription
	if err = r.QueryRowContext(ctx, query, args...).Scan(subscriptionFields(&sub)...); err != nil {
		log.Err(err).
			Str("func", "*subscriptionRepository.Create").
			Str("viewer_id", viewerID).
			Str("creator_id", creatorID).
			Msg("failed to create subscription")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Subscription{}, ErrSubscriptionExists
		case pgerrcode.ForeignKeyViolation:
			return models.Subscription{}, ErrUserNotFound
		default:
			return models.Subscription{}, r.queryError(err)
		}
	}

	return sub, nil
}

// Delete unsubscribes viewerID from creatorID and returns the removed row.
func (r *subscriptionRepository) Delete(ctx context.Context, viewerID, creatorID string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSubscriptionQuery(ctx, viewerID, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.Delete").Msg("failed to create query")
		return models.Subscription{}, err
	}

	var sub models.Subscription
	if err = r.QueryRowContext(ctx, query, args...).Scan(subscriptionFields(&sub)...); err != nil {
		log.Err(err).
			Str("func", "*subscriptionRepository.Delete").
			Str("viewer_id", viewerID).
			Str("creator_id", creatorID).
			Msg("failed to delete subscription")
		return models.Subscription{}, r.rowError(err, ErrSubscriptionNotFound)
	}

	return sub, nil
}
