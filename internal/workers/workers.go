package workers

import (
	"context"
	"errors"
)

// Stopper is implemented by workers that hold work to drain on shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Workers starts a fixed set of background workers and stops them in
// reverse start order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop drains every worker that implements [Stopper], sharing ctx as the
// overall deadline, and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for i := len(w.workers) - 1; i >= 0; i-- {
		stopper, ok := w.workers[i].(Stopper)
		if !ok {
			continue
		}
		if err := stopper.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
