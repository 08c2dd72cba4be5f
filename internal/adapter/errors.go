// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Provider status errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("provider rejected the request")
	ErrUnauthorized        = errors.New("provider credentials rejected")
	ErrForbidden           = errors.New("provider access forbidden")
	ErrNotFound            = errors.New("provider resource not found")
	ErrConflict            = errors.New("provider reported a conflict")
	ErrTooManyRequests     = errors.New("provider rate limit exceeded")
	ErrBadGateway          = errors.New("provider unavailable")
	ErrInternalServerError = errors.New("provider internal error")
)

var (
	// ErrProviderRequest wraps transport failures (dial, timeout, decode).
	ErrProviderRequest = errors.New("provider request failed")

	// ErrEmptyGeneration is returned when a generation call succeeds but
	// yields no text or image.
	ErrEmptyGeneration = errors.New("generation returned no output")

	// ErrPredictionFailed is returned when an image prediction ends in the
	// failed or canceled state.
	ErrPredictionFailed = errors.New("image prediction failed")

	// ErrPublishingEvent is returned when the event stream rejects a message.
	ErrPublishingEvent = errors.New("failed to publish event")
)
