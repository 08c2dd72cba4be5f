// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPAddress is returned when the server has nowhere to listen.
	errNoHTTPAddress = errors.New("http address is not configured")
	// errNoHTTPHandler is returned when no router was built.
	errNoHTTPHandler = errors.New("http handler is not created")
)
