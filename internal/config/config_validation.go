// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup: struct tag rules first, then
// the cross-field rules tags cannot express.
func (cfg *StructuredConfig) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.App.JWKSURL == "" && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Objects.Bucket != "" && cfg.Storage.Objects.PublicBaseURL == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxThumbnailSize != "" {
		if _, err := humanize.ParseBytes(cfg.App.MaxThumbnailSize); err != nil {
			return fmt.Errorf("%w: max thumbnail size: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Adapter.QStash.Token != "" {
		if cfg.Server.PublicURL == "" {
			return fmt.Errorf("%w: orchestrator needs a public callback url", ErrInvalidAdapterConfigs)
		}
		if cfg.App.QStashCurrentSigningKey == "" && cfg.App.QStashNextSigningKey == "" {
			return fmt.Errorf("%w: orchestrator needs a signing key", ErrInvalidAdapterConfigs)
		}
	}

	return nil
}

// MaxThumbnailBytes returns the parsed thumbnail size limit, or 0 when unset.
func (a App) MaxThumbnailBytes() int64 {
	size, err := humanize.ParseBytes(a.MaxThumbnailSize)
	if err != nil {
		return 0
	}
	return int64(size)
}
