// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-tube/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildUpsertUserQuery(t *testing.T) {
	query, args, err := buildUpsertUserQuery(context.Background(), models.User{
		ClerkID:  "user_2x",
		Name:     "Jane Doe",
		ImageURL: "https://img.example.com/jane.png",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (clerk_id,name,image_url) VALUES ($1,$2,$3)"))
	assert.Contains(t, query, "ON CONFLICT (clerk_id) DO UPDATE")
	assert.Contains(t, query, "RETURNING id, clerk_id, name, image_url, created_at, updated_at")
	assert.Equal(t, []any{"user_2x", "Jane Doe", "https://img.example.com/jane.png"}, args)
}

func Test_buildGetChannelQuery(t *testing.T) {
	tests := []struct {
		name     string
		viewerID string
		wantArgs []any
		contains string
	}{
		{
			name:     "anonymous viewer",
			wantArgs: []any{"creator"},
			contains: "FALSE AS viewer_subscribed",
		},
		{
			name:     "signed in viewer",
			viewerID: "viewer",
			wantArgs: []any{"viewer", "creator"},
			contains: "s.viewer_id = $1) AS viewer_subscribed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetChannelQuery(context.Background(), "creator", tt.viewerID)
			require.NoError(t, err)

			assert.Contains(t, query, tt.contains)
			assert.Contains(t, query, "AS video_count")
			assert.Contains(t, query, "AS subscriber_count")
			assert.Contains(t, query, "FROM users u")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildGetCategoriesQuery(t *testing.T) {
	query, args, err := buildGetCategoriesQuery(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name ASC", query)
	assert.Empty(t, args)
}

func Test_buildCreateVideoQuery(t *testing.T) {
	query, args, err := buildCreateVideoQuery(context.Background(), models.Video{
		Title:       models.DefaultTitle,
		UserID:      "owner",
		MuxStatus:   strPtr(models.MuxStatusWaiting),
		MuxUploadID: strPtr("upload-1"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO videos (title,user_id,mux_status,mux_upload_id) VALUES ($1,$2,$3,$4)"))
	assert.Contains(t, query, "RETURNING id, title")
	assert.Equal(t, []any{"Untitled", "owner", "waiting", "upload-1"}, args)
}

func Test_buildUpdateVideoQuery(t *testing.T) {
	visibility := models.VisibilityPublic

	tests := []struct {
		name     string
		update   models.VideoUpdate
		wantSets []string
		wantArgs []any
	}{
		{
			name:     "only timestamps",
			update:   models.VideoUpdate{ID: "vid"},
			wantArgs: []any{"vid", "owner"},
		},
		{
			name: "all fields",
			update: models.VideoUpdate{
				ID:          "vid",
				Title:       strPtr("New title"),
				Description: strPtr("About"),
				CategoryID:  models.NewNullableString(strPtr("cat")),
				Visibility:  &visibility,
			},
			wantSets: []string{"title = $1", "description = $2", "category_id = $3", "visibility = $4"},
			wantArgs: []any{"New title", "About", "cat", "public", "vid", "owner"},
		},
		{
			name:     "title only",
			update:   models.VideoUpdate{ID: "vid", Title: strPtr("T")},
			wantSets: []string{"title = $1"},
			wantArgs: []any{"T", "vid", "owner"},
		},
		{
			name:     "category cleared",
			update:   models.VideoUpdate{ID: "vid", CategoryID: models.NewNullableString(nil)},
			wantSets: []string{"category_id = $1"},
			wantArgs: []any{nil, "vid", "owner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateVideoQuery(context.Background(), "owner", tt.update)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "UPDATE videos SET updated_at = NOW()"))
			for _, set := range tt.wantSets {
				assert.Contains(t, query, set)
			}
			assert.Contains(t, query, "WHERE id = $")
			assert.Contains(t, query, "AND user_id = $")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateVideoThumbnailQuery(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		_, args, err := buildUpdateVideoThumbnailQuery(context.Background(), "owner", "vid", models.VideoThumbnail{
			URL: strPtr("https://cdn/k.jpg"),
			Key: strPtr("k.jpg"),
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"https://cdn/k.jpg", "k.jpg", "vid", "owner"}, args)
	})

	t.Run("clear", func(t *testing.T) {
		query, args, err := buildUpdateVideoThumbnailQuery(context.Background(), "owner", "vid", models.VideoThumbnail{})
		require.NoError(t, err)
		assert.Contains(t, query, "thumbnail_url = $1, thumbnail_key = $2")
		assert.Equal(t, []any{nil, nil, "vid", "owner"}, args)
	})
}

func Test_buildGetVideoQuery(t *testing.T) {
	t.Run("anonymous sees public only", func(t *testing.T) {
		query, args, err := buildGetVideoQuery(context.Background(), "vid", "")
		require.NoError(t, err)

		assert.Contains(t, query, "JOIN users u ON u.id = v.user_id")
		assert.Contains(t, query, "FALSE AS viewer_subscribed")
		assert.Contains(t, query, "v.visibility = $2")
		assert.Equal(t, []any{"vid", "public"}, args)
	})

	t.Run("owner sees private", func(t *testing.T) {
		query, args, err := buildGetVideoQuery(context.Background(), "vid", "viewer")
		require.NoError(t, err)

		assert.Contains(t, query, "(v.visibility = $3 OR v.user_id = $4)")
		assert.Equal(t, []any{"viewer", "vid", "public", "viewer"}, args)
	})
}

func Test_buildGetVideosQuery(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		query    models.VideoQuery
		contains []string
		wantArgs []any
	}{
		{
			name:     "first page with default limit",
			query:    models.VideoQuery{},
			contains: []string{"ORDER BY v.updated_at DESC, v.id DESC LIMIT 6"},
			wantArgs: []any{"public"},
		},
		{
			name: "category and cursor",
			query: models.VideoQuery{
				PageRequest: models.PageRequest{Cursor: &models.Cursor{ID: "last", UpdatedAt: ts}, Limit: 10},
				CategoryID:  strPtr("cat"),
			},
			contains: []string{
				"v.category_id = $2",
				"(v.updated_at, v.id) < ($3, $4)",
				"LIMIT 11",
			},
			wantArgs: []any{"public", "cat", ts, "last"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetVideosQuery(context.Background(), tt.query)
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildGetUserVideosQuery(t *testing.T) {
	query, args, err := buildGetUserVideosQuery(context.Background(), models.VideoQuery{
		PageRequest: models.PageRequest{Limit: 2},
		UserID:      "owner",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM videos WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY updated_at DESC, id DESC LIMIT 3")
	assert.Equal(t, []any{"owner"}, args)
}

func Test_buildUpdateVideoByUploadIDQuery(t *testing.T) {
	duration := int64(12_345)
	query, args, err := buildUpdateVideoByUploadIDQuery(context.Background(), "upload-1", models.VideoAssetUpdate{
		AssetID:    strPtr("asset-1"),
		Status:     strPtr(models.MuxStatusReady),
		PlaybackID: strPtr("pb-1"),
		Duration:   &duration,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "mux_asset_id = $1, mux_status = $2, mux_playback_id = $3, duration = $4, updated_at = NOW()")
	assert.Contains(t, query, "WHERE mux_upload_id = $5")
	assert.NotContains(t, query, "thumbnail_url")
	assert.Equal(t, []any{"asset-1", "ready", "pb-1", int64(12_345), "upload-1"}, args)
}

func Test_buildUpdateVideoTrackQuery(t *testing.T) {
	query, args, err := buildUpdateVideoTrackQuery(context.Background(), "asset-1", models.VideoTrackUpdate{
		TrackID:     "track-1",
		TrackStatus: "ready",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE mux_asset_id = $3")
	assert.Equal(t, []any{"track-1", "ready", "asset-1"}, args)
}

func Test_buildSubscriptionQueries(t *testing.T) {
	query, args, err := buildCreateSubscriptionQuery(context.Background(), "viewer", "creator")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO subscriptions (viewer_id,creator_id) VALUES ($1,$2)"))
	assert.Equal(t, []any{"viewer", "creator"}, args)

	query, args, err = buildDeleteSubscriptionQuery(context.Background(), "viewer", "creator")
	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM subscriptions WHERE viewer_id = $1 AND creator_id = $2")
	assert.Equal(t, []any{"viewer", "creator"}, args)
}
