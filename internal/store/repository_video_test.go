// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoRepo(t *testing.T) (*videoRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &videoRepository{DB: newDBFromSQL(db), logger: logger.Nop()}, mock
}

func videoRows() *sqlmock.Rows {
	return sqlmock.NewRows(videoColumns)
}

func TestVideoRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "created",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO videos (title,user_id,mux_status,mux_upload_id)")).
					WithArgs(models.DefaultTitle, "owner", models.MuxStatusWaiting, "upload-1").
					WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))
			},
		},
		{
			name: "unknown owner",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO videos").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newVideoRepo(t)
			tt.setup(mock)

			video, err := repo.Create(testContext(), models.Video{
				Title:       models.DefaultTitle,
				UserID:      "owner",
				MuxStatus:   strPtr(models.MuxStatusWaiting),
				MuxUploadID: strPtr("upload-1"),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "v-1", video.ID)
				assert.Equal(t, models.VisibilityPublic, video.Visibility)
				require.NotNil(t, video.MuxPlaybackID)
				assert.Equal(t, "pb-1", *video.MuxPlaybackID)
				assert.Nil(t, video.Description)
				assert.Equal(t, int64(61000), video.Duration)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_Update(t *testing.T) {
	title := "New title"
	update := models.VideoUpdate{ID: "v-1", Title: &title, CategoryID: models.NewNullableString(strPtr("c-1"))}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE videos SET updated_at = NOW(), title = $1, category_id = $2 WHERE id = $3 AND user_id = $4")).
					WithArgs("New title", "c-1", "v-1", "owner").
					WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))
			},
		},
		{
			name: "not owned",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE videos").WillReturnRows(videoRows())
			},
			wantErr: ErrVideoNotFound,
		},
		{
			name: "unknown category",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE videos").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newVideoRepo(t)
			tt.setup(mock)

			_, err := repo.Update(testContext(), "owner", update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_UpdateThumbnail(t *testing.T) {
	repo, mock := newVideoRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE videos SET thumbnail_url = $1, thumbnail_key = $2")).
		WithArgs(nil, nil, "v-1", "owner").
		WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))

	_, err := repo.UpdateThumbnail(testContext(), "owner", "v-1", models.VideoThumbnail{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Delete(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM videos WHERE id = $1 AND user_id = $2")).
			WithArgs("v-1", "owner").
			WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))

		video, err := repo.Delete(testContext(), "owner", "v-1")
		require.NoError(t, err)
		assert.Equal(t, "v-1", video.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery("DELETE FROM videos").WillReturnRows(videoRows())

		_, err := repo.Delete(testContext(), "owner", "v-1")
		assert.ErrorIs(t, err, ErrVideoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_FindByIDAndUser(t *testing.T) {
	repo, mock := newVideoRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM videos WHERE id = $1 AND user_id = $2")).
		WithArgs("v-1", "owner").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindByIDAndUser(testContext(), "v-1", "owner")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_GetOne(t *testing.T) {
	columns := append(append(append([]string{}, qualify("v", videoColumns)...), qualify("u", userColumns)...),
		"subscriber_count", "viewer_subscribed")

	t.Run("found", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		row := append(append(videoRow("v-1", "owner"), userRow("owner", "user_o", "Owner")...), int64(7), false)
		mock.ExpectQuery("FROM videos v JOIN users u ON u.id = v.user_id").
			WithArgs("v-1", "public").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(row...))

		details, err := repo.GetOne(testContext(), "v-1", "")
		require.NoError(t, err)
		assert.Equal(t, "v-1", details.ID)
		assert.Equal(t, "Owner", details.User.Name)
		assert.Equal(t, int64(7), details.User.SubscriberCount)
		assert.False(t, details.User.ViewerSubscribed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("private video of someone else", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery("FROM videos v JOIN users u").
			WithArgs("viewer", "v-1", "public", "viewer").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetOne(testContext(), "v-1", "viewer")
		assert.ErrorIs(t, err, ErrVideoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_GetMany(t *testing.T) {
	columns := append(append([]string{}, qualify("v", videoColumns)...), qualify("u", userColumns)...)

	t.Run("feed page", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		rows := sqlmock.NewRows(columns).
			AddRow(append(videoRow("v-2", "owner"), userRow("owner", "user_o", "Owner")...)...).
			AddRow(append(videoRow("v-1", "owner"), userRow("owner", "user_o", "Owner")...)...)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE v.visibility = $1 ORDER BY v.updated_at DESC, v.id DESC LIMIT 3")).
			WithArgs("public").
			WillReturnRows(rows)

		videos, err := repo.GetMany(testContext(), models.VideoQuery{PageRequest: models.PageRequest{Limit: 2}})
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "v-2", videos[0].ID)
		assert.Equal(t, "Owner", videos[0].User.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database unavailable", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery("FROM videos v").WillReturnError(pgError(pgerrcode.TooManyConnections))

		_, err := repo.GetMany(testContext(), models.VideoQuery{})
		assert.ErrorIs(t, err, ErrDatabaseUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_GetManyByUser(t *testing.T) {
	repo, mock := newVideoRepo(t)
	private := videoRow("v-2", "owner")
	private[14] = "private"
	mock.ExpectQuery(regexp.QuoteMeta("FROM videos WHERE user_id = $1 ORDER BY updated_at DESC, id DESC LIMIT 6")).
		WithArgs("owner").
		WillReturnRows(videoRows().AddRow(private...).AddRow(videoRow("v-1", "owner")...))

	videos, err := repo.GetManyByUser(testContext(), models.VideoQuery{UserID: "owner"})
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, models.VisibilityPrivate, videos[0].Visibility)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpdateByUploadID(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE videos SET mux_asset_id = $1, mux_status = $2")).
			WithArgs("asset-1", "preparing", "upload-1").
			WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))

		_, err := repo.UpdateByUploadID(testContext(), "upload-1", models.VideoAssetUpdate{
			AssetID: strPtr("asset-1"),
			Status:  strPtr(models.MuxStatusPreparing),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown upload", func(t *testing.T) {
		repo, mock := newVideoRepo(t)
		mock.ExpectQuery("UPDATE videos").WillReturnRows(videoRows())

		_, err := repo.UpdateByUploadID(testContext(), "upload-x", models.VideoAssetUpdate{Status: strPtr("errored")})
		assert.ErrorIs(t, err, ErrVideoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_DeleteByUploadID(t *testing.T) {
	repo, mock := newVideoRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM videos WHERE mux_upload_id = $1")).
		WithArgs("upload-1").
		WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))

	video, err := repo.DeleteByUploadID(testContext(), "upload-1")
	require.NoError(t, err)
	assert.Equal(t, "v-1", video.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpdateTrackByAssetID(t *testing.T) {
	repo, mock := newVideoRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE videos SET mux_track_id = $1, mux_track_status = $2, updated_at = NOW() WHERE mux_asset_id = $3")).
		WithArgs("track-1", "ready", "asset-1").
		WillReturnRows(videoRows().AddRow(videoRow("v-1", "owner")...))

	_, err := repo.UpdateTrackByAssetID(testContext(), "asset-1", models.VideoTrackUpdate{TrackID: "track-1", TrackStatus: "ready"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
