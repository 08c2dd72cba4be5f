// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-tube/models"
)

// The field lists below follow userColumns, videoColumns, categoryColumns
// and subscriptionColumns in sql_queries.go.

func userFields(u *models.User) []any {
	return []any{&u.ID, &u.ClerkID, &u.Name, &u.ImageURL, &u.CreatedAt, &u.UpdatedAt}
}

func categoryFields(c *models.Category) []any {
	return []any{&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt}
}

func videoFields(v *models.Video) []any {
	return []any{
		&v.ID, &v.Title, &v.Description,
		&v.MuxStatus, &v.MuxAssetID, &v.MuxUploadID, &v.MuxPlaybackID, &v.MuxTrackID, &v.MuxTrackStatus,
		&v.ThumbnailURL, &v.ThumbnailKey, &v.PreviewURL, &v.PreviewKey,
		&v.Duration, &v.Visibility, &v.UserID, &v.CategoryID,
		&v.CreatedAt, &v.UpdatedAt,
	}
}

func subscriptionFields(s *models.Subscription) []any {
	return []any{&s.ViewerID, &s.CreatorID, &s.CreatedAt, &s.UpdatedAt}
}

// rowError maps an empty result to notFound and wraps everything else.
func (db *DB) rowError(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return db.queryError(err)
}
