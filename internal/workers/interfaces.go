// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background work of the go-tube server.
//
// The [Dispatcher] executes AI workflows in-process when no external
// orchestrator is configured. It is started together with the HTTP server
// through the [Workers] aggregate.
package workers

import (
	"context"

	"github.com/MKhiriev/go-tube/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run must not block: implementations spawn their goroutines and return.
type Worker interface {
	Run()
}

// Runner executes one workflow run to completion.
type Runner interface {
	Run(ctx context.Context, req models.WorkflowRequest) error
}

// RunnerFunc adapts a function to [Runner].
type RunnerFunc func(ctx context.Context, req models.WorkflowRequest) error

func (f RunnerFunc) Run(ctx context.Context, req models.WorkflowRequest) error {
	return f(ctx, req)
}
