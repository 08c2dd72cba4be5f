// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of a transport server: RunServer blocks until the
// server stops, Shutdown stops it gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
