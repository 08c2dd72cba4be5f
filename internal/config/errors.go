// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidConfig wraps struct tag validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAdapterConfigs indicates invalid provider settings
	// (for example, an orchestrator token without a public callback URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a bucket without a public base URL).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, no way to verify session tokens).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
