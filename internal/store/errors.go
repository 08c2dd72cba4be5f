// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// write references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrVideoNotFound is returned when no video matches the id (and owner,
	// for owner scoped operations) or the provider upload/asset id.
	ErrVideoNotFound = errors.New("video was not found")

	// ErrCategoryNotFound is returned when an update references an unknown
	// category.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrSubscriptionNotFound is returned when removing a subscription that
	// does not exist.
	ErrSubscriptionNotFound = errors.New("subscription was not found")

	// ErrSubscriptionExists is returned when the viewer already follows the
	// creator.
	ErrSubscriptionExists = errors.New("subscription already exists")

	// ErrObjectStorageDisabled is returned by the object storage when no
	// bucket is configured.
	ErrObjectStorageDisabled = errors.New("object storage is not configured")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUploadingObject is returned when the object storage rejects a put.
	ErrUploadingObject = errors.New("failed to upload object")

	// ErrDeletingObject is returned when the object storage rejects a delete.
	ErrDeletingObject = errors.New("failed to delete object")
)
