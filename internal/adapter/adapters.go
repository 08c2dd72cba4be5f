package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
)

// Adapters groups the outbound clients.
type Adapters struct {
	VideoProvider  VideoProvider
	TextGenerator  TextGenerator
	ImageGenerator ImageGenerator

	// WorkflowTrigger is nil when no orchestrator token is configured; runs
	// are then executed in-process.
	WorkflowTrigger WorkflowTrigger

	EventPublisher EventPublisher
}

func NewAdapters(cfg config.StructuredConfig, logger *logger.Logger) (*Adapters, error) {
	timeout := cfg.Adapter.RequestTimeout

	publisher, err := NewEventPublisher(cfg.Events, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating event publisher: %w", err)
	}

	adapters := &Adapters{
		VideoProvider:  NewMuxClient(cfg.Adapter.Mux, timeout, logger),
		TextGenerator:  NewGeminiClient(cfg.Adapter.Gemini, timeout, logger),
		ImageGenerator: NewReplicateClient(cfg.Adapter.Replicate, timeout, logger),
		EventPublisher: publisher,
	}
	if cfg.Adapter.QStash.Token != "" {
		adapters.WorkflowTrigger = NewQStashClient(cfg.Adapter.QStash, cfg.Server.PublicURL, timeout, logger)
	}

	return adapters, nil
}

// Close releases the event publisher.
func (a *Adapters) Close() error {
	return a.EventPublisher.Close()
}
