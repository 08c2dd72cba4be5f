// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, os.Environ())
}

// parseEnvFrom fills cfg from KEY=VALUE pairs. Every variable that fails to
// convert is reported, not only the first one.
func parseEnvFrom(cfg any, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)})
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) {
		err = errors.Join(agg.Errors...)
	}
	return fmt.Errorf("reading environment: %w", err)
}
