// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer: struct tags through go-playground/validator plus the rules that
// tags cannot express, such as "at least one field to update".
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator reports an error wrapping ErrInvalidInput for bad input. When
// field names are given, only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
