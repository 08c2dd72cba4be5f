// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation so callers can map it to
	// a single client error.
	ErrInvalidInput = errors.New("invalid input")

	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidWorkflowKind  = errors.New("unknown workflow kind")
	ErrEmptyThumbnailPrompt = errors.New("thumbnail prompt is required")
)
