package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tube/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "clerk_id", "name", "image_url", "created_at", "updated_at"}

	categoryColumns = []string{"id", "name", "description", "created_at", "updated_at"}

	videoColumns = []string{
		"id", "title", "description",
		"mux_status", "mux_asset_id", "mux_upload_id", "mux_playback_id", "mux_track_id", "mux_track_status",
		"thumbnail_url", "thumbnail_key", "preview_url", "preview_key",
		"duration", "visibility", "user_id", "category_id",
		"created_at", "updated_at",
	}

	subscriptionColumns = []string{"viewer_id", "creator_id", "created_at", "updated_at"}
)

// qualify prefixes every column with a table alias.
func qualify(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// nullable turns a nil pointer into SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildUpsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return toSQL(psql.Insert("users").
		Columns("clerk_id", "name", "image_url").
		Values(user.ClerkID, user.Name, user.ImageURL).
		Suffix("ON CONFLICT (clerk_id) DO UPDATE SET name = EXCLUDED.name, image_url = EXCLUDED.image_url, updated_at = NOW()").
		Suffix(returning(userColumns)))
}

func buildDeleteUserByClerkIDQuery(ctx context.Context, clerkID string) (string, []any, error) {
	return toSQL(psql.Delete("users").Where(sq.Eq{"clerk_id": clerkID}))
}

func buildFindUserQuery(ctx context.Context, column, value string) (string, []any, error) {
	return toSQL(psql.Select(userColumns...).From("users").Where(sq.Eq{column: value}))
}

// buildGetChannelQuery selects the user with its public video count,
// subscriber count and, for a known viewer, whether they follow the user.
func buildGetChannelQuery(ctx context.Context, userID, viewerID string) (string, []any, error) {
	viewerSubscribed := sq.Expr("FALSE AS viewer_subscribed")
	if viewerID != "" {
		viewerSubscribed = sq.Expr("EXISTS (SELECT 1 FROM subscriptions s WHERE s.creator_id = u.id AND s.viewer_id = ?) AS viewer_subscribed", viewerID)
	}

	return toSQL(psql.Select(qualify("u", userColumns)...).
		Column("(SELECT COUNT(*) FROM videos v WHERE v.user_id = u.id AND v.visibility = 'public') AS video_count").
		Column("(SELECT COUNT(*) FROM subscriptions s WHERE s.creator_id = u.id) AS subscriber_count").
		Column(viewerSubscribed).
		From("users u").
		Where(sq.Eq{"u.id": userID}))
}

// categories

func buildGetCategoriesQuery(ctx context.Context) (string, []any, error) {
	return toSQL(psql.Select(categoryColumns...).From("categories").OrderBy("name ASC"))
}

// videos

func buildCreateVideoQuery(ctx context.Context, video models.Video) (string, []any, error) {
	return toSQL(psql.Insert("videos").
		Columns("title", "user_id", "mux_status", "mux_upload_id").
		Values(video.Title, video.UserID, nullable(video.MuxStatus), nullable(video.MuxUploadID)).
		Suffix(returning(videoColumns)))
}

func buildUpdateVideoQuery(ctx context.Context, userID string, update models.VideoUpdate) (string, []any, error) {
	b := psql.Update("videos").Set("updated_at", sq.Expr("NOW()"))
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.CategoryID.Set {
		b = b.Set("category_id", nullable(update.CategoryID.Value))
	}
	if update.Visibility != nil {
		b = b.Set("visibility", string(*update.Visibility))
	}

	return toSQL(b.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(videoColumns)))
}

func buildUpdateVideoThumbnailQuery(ctx context.Context, userID, id string, thumbnail models.VideoThumbnail) (string, []any, error) {
	return toSQL(psql.Update("videos").
		Set("thumbnail_url", nullable(thumbnail.URL)).
		Set("thumbnail_key", nullable(thumbnail.Key)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(videoColumns)))
}

func buildDeleteVideoQuery(ctx context.Context, userID, id string) (string, []any, error) {
	return toSQL(psql.Delete("videos").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(videoColumns)))
}

func buildFindVideoQuery(ctx context.Context, id, userID string) (string, []any, error) {
	return toSQL(psql.Select(videoColumns...).
		From("videos").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

// buildGetVideoQuery joins the owner with its subscriber count. Private
// videos are only returned to their owner.
func buildGetVideoQuery(ctx context.Context, id, viewerID string) (string, []any, error) {
	viewerSubscribed := sq.Expr("FALSE AS viewer_subscribed")
	visible := sq.Sqlizer(sq.Eq{"v.visibility": string(models.VisibilityPublic)})
	if viewerID != "" {
		viewerSubscribed = sq.Expr("EXISTS (SELECT 1 FROM subscriptions s WHERE s.creator_id = u.id AND s.viewer_id = ?) AS viewer_subscribed", viewerID)
		visible = sq.Or{visible, sq.Eq{"v.user_id": viewerID}}
	}

	return toSQL(psql.Select(qualify("v", videoColumns)...).
		Columns(qualify("u", userColumns)...).
		Column("(SELECT COUNT(*) FROM subscriptions s WHERE s.creator_id = u.id) AS subscriber_count").
		Column(viewerSubscribed).
		From("videos v").
		Join("users u ON u.id = v.user_id").
		Where(sq.Eq{"v.id": id}).
		Where(visible))
}

// pageOf applies keyset pagination on (updated_at, id) descending and
// fetches one extra row to detect the next page.
func pageOf(b sq.SelectBuilder, alias string, page models.PageRequest) sq.SelectBuilder {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	if page.Cursor != nil {
		b = b.Where(sq.Expr(
			fmt.Sprintf("(%supdated_at, %sid) < (?, ?)", prefix, prefix),
			page.Cursor.UpdatedAt, page.Cursor.ID,
		))
	}

	return b.
		OrderBy(prefix+"updated_at DESC", prefix+"id DESC").
		Limit(uint64(page.EffectiveLimit() + 1))
}

func buildGetVideosQuery(ctx context.Context, query models.VideoQuery) (string, []any, error) {
	b := psql.Select(qualify("v", videoColumns)...).
		Columns(qualify("u", userColumns)...).
		From("videos v").
		Join("users u ON u.id = v.user_id").
		Where(sq.Eq{"v.visibility": string(models.VisibilityPublic)})
	if query.CategoryID != nil {
		b = b.Where(sq.Eq{"v.category_id": *query.CategoryID})
	}

	return toSQL(pageOf(b, "v", query.PageRequest))
}

func buildGetUserVideosQuery(ctx context.Context, query models.VideoQuery) (string, []any, error) {
	b := psql.Select(videoColumns...).
		From("videos").
		Where(sq.Eq{"user_id": query.UserID})

	return toSQL(pageOf(b, "", query.PageRequest))
}

func buildUpdateVideoByUploadIDQuery(ctx context.Context, uploadID string, update models.VideoAssetUpdate) (string, []any, error) {
	b := psql.Update("videos")
	set := func(column string, value *string) {
		if value != nil {
			b = b.Set(column, *value)
		}
	}
	set("mux_asset_id", update.AssetID)
	set("mux_status", update.Status)
	set("mux_playback_id", update.PlaybackID)
	set("thumbnail_url", update.ThumbnailURL)
	set("thumbnail_key", update.ThumbnailKey)
	set("preview_url", update.PreviewURL)
	set("preview_key", update.PreviewKey)
	if update.Duration != nil {
		b = b.Set("duration", *update.Duration)
	}

	return toSQL(b.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"mux_upload_id": uploadID}).
		Suffix(returning(videoColumns)))
}

func buildDeleteVideoByUploadIDQuery(ctx context.Context, uploadID string) (string, []any, error) {
	return toSQL(psql.Delete("videos").
		Where(sq.Eq{"mux_upload_id": uploadID}).
		Suffix(returning(videoColumns)))
}

func buildUpdateVideoTrackQuery(ctx context.Context, assetID string, update models.VideoTrackUpdate) (string, []any, error) {
	return toSQL(psql.Update("videos").
		Set("mux_track_id", update.TrackID).
		Set("mux_track_status", update.TrackStatus).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"mux_asset_id": assetID}).
		Suffix(returning(videoColumns)))
}

// subscriptions

func buildCreateSubscriptionQuery(ctx context.Context, viewerID, creatorID string) (string, []any, error) {
	return toSQL(psql.Insert("subscriptions").
		Columns("viewer_id", "creator_id").
		Values(viewerID, creatorID).
		Suffix(returning(subscriptionColumns)))
}

func buildDeleteSubscriptionQuery(ctx context.Context, viewerID, creatorID string) (string, []any, error) {
	return toSQL(psql.Delete("subscriptions").
		Where(sq.Eq{"viewer_id": viewerID}).
		Where(sq.Eq{"creator_id": creatorID}).
		Suffix(returning(subscriptionColumns)))
}
