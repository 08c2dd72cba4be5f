// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound clients of the go-tube server: the
// video provider, the text and image generators, the workflow orchestrator
// and the video status event stream.
//
// HTTP clients are built on resty through utils.HTTPClient. Provider
// statuses are mapped by mapHTTPError so that callers can match failures
// with [errors.Is] (e.g. [ErrNotFound] for 404, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tube/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VideoProvider opens direct uploads and serves derived assets of the
// video processing provider.
type VideoProvider interface {
	// CreateUpload opens a direct upload; passthrough is echoed back in
	// webhooks.
	CreateUpload(ctx context.Context, passthrough string) (models.MuxUpload, error)
	// FetchTranscript downloads the plain text rendition of a text track.
	FetchTranscript(ctx context.Context, playbackID, trackID string) (string, error)
	// ThumbnailURL and PreviewURL return the provider image URLs of a
	// playback id.
	ThumbnailURL(playbackID string) string
	PreviewURL(playbackID string) string
}

// TextGenerator produces text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces an image from a prompt and returns its URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// WorkflowTrigger hands a workflow run to the orchestrator.
type WorkflowTrigger interface {
	// Trigger schedules req and returns the run id.
	Trigger(ctx context.Context, req models.WorkflowRequest) (models.WorkflowRun, error)
}

// EventPublisher emits video status events to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, event models.VideoStatusEvent) error
	Close() error
}
