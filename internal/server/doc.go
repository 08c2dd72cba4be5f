// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server and shuts it down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
