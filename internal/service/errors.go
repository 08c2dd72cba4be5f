// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when a token is missing, invalid, or
	// names a user unknown to this server.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSelfSubscription is returned when a user subscribes to themselves.
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")

	// ErrVideoNotReady is returned when an operation needs a playback id the
	// video does not have yet.
	ErrVideoNotReady = errors.New("video has no playback id yet")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
)

// Webhook and workflow errors.
var (
	ErrMissingUploadID   = errors.New("missing upload id")
	ErrMissingPlaybackID = errors.New("missing playback id")
	ErrMissingAssetID    = errors.New("missing asset id")

	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrUnknownWorkflow    = errors.New("unknown workflow")

	// ErrWorkflowStep wraps the failure of a named workflow step.
	ErrWorkflowStep = errors.New("workflow step failed")
)
