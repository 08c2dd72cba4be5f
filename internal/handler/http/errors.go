// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request level errors. The status they map to is in errorStatusMap.
var (
	// ErrEmptyAuthorizationHeader is returned when a protected request has
	// no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not a
	// bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrUnknownProcedure = errors.New("no procedure found")
	ErrMethodNotAllowed = errors.New("method not supported by procedure")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")

	// ErrMissingSignature is returned when a callback arrives without its
	// signature headers.
	ErrMissingSignature = errors.New("missing signature headers")

	// ErrSignatureNotConfigured is returned when a callback arrives but no
	// secret to check it against is configured.
	ErrSignatureNotConfigured = errors.New("webhook secret is not configured")

	ErrMissingFile = errors.New("missing file")
)
