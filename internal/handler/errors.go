// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHTTPAddress means the only transport has nowhere to listen.
	errNoHTTPAddress = errors.New("handlers: http address is not configured")
	errNoServices    = errors.New("handlers: services are not created")
)
