package http

import (
	"context"

	"github.com/MKhiriev/go-tube/models"
)

// registerProcedures builds the procedure table served under /rpc/.
func (h *Handler) registerProcedures() map[string]procedure {
	s := h.services
	v := h.validator

	return map[string]procedure{
		// videos
		"videos.create": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, _ noInput) (models.CreatedVideo, error) {
				return s.VideoService.Create(ctx, userID)
			}),
		"videos.update": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoUpdate) (models.Video, error) {
				return s.VideoService.Update(ctx, userID, in)
			}),
		"videos.remove": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.Video, error) {
				return s.VideoService.Remove(ctx, userID, in.ID)
			}),
		"videos.restoreThumbnail": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.Video, error) {
				return s.VideoService.RestoreThumbnail(ctx, userID, in.ID)
			}),
		"videos.generateTitle": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.WorkflowRun, error) {
				return s.VideoService.GenerateTitle(ctx, userID, in.ID)
			}),
		"videos.generateDescription": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.WorkflowRun, error) {
				return s.VideoService.GenerateDescription(ctx, userID, in.ID)
			}),
		"videos.generateThumbnail": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.ThumbnailPrompt) (models.WorkflowRun, error) {
				return s.VideoService.GenerateThumbnail(ctx, userID, in)
			}),
		"videos.getOne": newProcedure(queryProcedure, publicAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.VideoDetails, error) {
				return s.VideoService.GetOne(ctx, in.ID, userID)
			}),
		"videos.getMany": newProcedure(queryProcedure, publicAccess, v,
			func(ctx context.Context, _ string, in models.VideoQuery) (models.Page[models.VideoWithUser], error) {
				return s.VideoService.GetMany(ctx, in)
			}),

		// studio
		"studio.getMany": newProcedure(queryProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.PageRequest) (models.Page[models.Video], error) {
				return s.StudioService.GetMany(ctx, userID, in)
			}),
		"studio.getOne": newProcedure(queryProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.VideoID) (models.Video, error) {
				return s.StudioService.GetOne(ctx, userID, in.ID)
			}),

		"categories.getMany": newProcedure(queryProcedure, publicAccess, v,
			func(ctx context.Context, _ string, _ noInput) ([]models.Category, error) {
				return s.CategoryService.GetMany(ctx)
			}),

		"users.getOne": newProcedure(queryProcedure, publicAccess, v,
			func(ctx context.Context, userID string, in models.UserID) (models.Channel, error) {
				return s.UserService.GetChannel(ctx, in.ID, userID)
			}),

		"subscriptions.create": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.SubscriptionTarget) (models.Subscription, error) {
				return s.SubscriptionService.Create(ctx, userID, in.UserID)
			}),
		"subscriptions.remove": newProcedure(mutationProcedure, protectedAccess, v,
			func(ctx context.Context, userID string, in models.SubscriptionTarget) (models.Subscription, error) {
				return s.SubscriptionService.Remove(ctx, userID, in.UserID)
			}),
	}
}
