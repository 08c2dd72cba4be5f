package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
)

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewEventPublisher connects a synchronous Kafka producer. With no brokers
// configured events are dropped by a no-op publisher.
func NewEventPublisher(cfg config.Events, logger *logger.Logger) (EventPublisher, error) {
	log := logger.WithComponent("event-publisher")
	if len(cfg.Brokers) == 0 {
		log.Warn().Msg("no kafka brokers configured, video status events are not published")
		return nopPublisher{}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		log.Err(err).Strs("brokers", cfg.Brokers).Msg("failed to create kafka producer")
		return nil, fmt.Errorf("error creating kafka producer: %w", err)
	}

	return newKafkaPublisher(producer, cfg.Topic, log), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *logger.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends event as JSON keyed by its upload (or asset) id.
func (k *kafkaPublisher) Publish(ctx context.Context, event models.VideoStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	partition, offset, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*kafkaPublisher.Publish").Str("type", event.Type).Msg("failed to publish event")
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*kafkaPublisher.Publish").
		Str("type", event.Type).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("event published")
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.producer.Close()
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.VideoStatusEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
