package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

var (
	ErrQueueFull         = errors.New("workflow queue is full")
	ErrDispatcherStopped = errors.New("workflow dispatcher is stopped")
)

type job struct {
	runID string
	req   models.WorkflowRequest
}

// Dispatcher queues workflow runs and executes them on a fixed pool of
// goroutines. A failed run is logged and dropped; nothing is retried.
type Dispatcher struct {
	runner      Runner
	concurrency int

	mu      sync.RWMutex
	queue   chan job
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	start  sync.Once

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDispatcher constructs a stopped dispatcher; call Run to start the pool.
func NewDispatcher(runner Runner, cfg config.Workers, logger *logger.Logger) *Dispatcher {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		runner:      runner,
		concurrency: concurrency,
		queue:       make(chan job, queueSize),
		ctx:         ctx,
		cancel:      cancel,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger.WithComponent("workflow-dispatcher"),
	}
}

// Run starts the worker goroutines. Calling it again has no effect.
func (d *Dispatcher) Run() {
	d.start.Do(func() {
		d.logger.Info().Int("concurrency", d.concurrency).Msg("starting workflow dispatcher")
		for i := 0; i < d.concurrency; i++ {
			d.wg.Add(1)
			go d.work()
		}
	})
}

// Trigger enqueues req without blocking and returns the generated run id.
func (d *Dispatcher) Trigger(ctx context.Context, req models.WorkflowRequest) (models.WorkflowRun, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return models.WorkflowRun{}, ErrDispatcherStopped
	}

	j := job{runID: d.ids.Generate(), req: req}
	select {
	case d.queue <- j:
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "*Dispatcher.Trigger").
			Str("kind", string(req.Kind)).
			Msg("workflow queue is full")
		return models.WorkflowRun{}, ErrQueueFull
	}

	logger.FromContext(ctx).Info().
		Str("func", "*Dispatcher.Trigger").
		Str("kind", string(req.Kind)).
		Str("video_id", req.VideoID).
		Str("run_id", j.runID).
		Msg("workflow queued")

	return models.WorkflowRun{WorkflowRunID: j.runID}, nil
}

// Stop rejects new runs, lets queued runs finish and waits for the pool
// until ctx expires. Runs still in flight then see their context canceled.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	// workers never started: nothing drains the queue
	d.start.Do(func() {})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for j := range d.queue {
		d.execute(j)
	}
}

func (d *Dispatcher) execute(j job) {
	log := d.logger.With().
		Str("run_id", j.runID).
		Str("kind", string(j.req.Kind)).
		Str("video_id", j.req.VideoID).
		Logger()
	ctx := log.WithContext(d.ctx)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("workflow run panicked")
		}
	}()

	if err := d.runner.Run(ctx, j.req); err != nil {
		log.Err(err).Msg("workflow run failed")
		return
	}
	log.Info().Msg("workflow run finished")
}
