package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"billing-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	config   *config.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.KafkaRetries
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	switch cfg.KafkaAcks {
	case "0":
		saramaConfig.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	}
	// Idempotent producers require acks from all replicas.
	if saramaConfig.Producer.RequiredAcks != sarama.WaitForAll {
		saramaConfig.Producer.Idempotent = false
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewKafkaEventPublisherWithProducer(producer, cfg, logger), nil
}

// NewKafkaEventPublisherWithProducer wraps an existing producer
func NewKafkaEventPublisherWithProducer(producer sarama.SyncProducer, cfg *config.Config, logger *zap.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
		config:   cfg,
	}
}

// Publish publishes an event to Kafka with retries and exponential backoff
func (p *KafkaEventPublisher) Publish(ctx context.Context, event interface{}) error {
	topic, err := p.getTopicForEvent(event)
	if err != nil {
		return fmt.Errorf("failed to determine topic: %w", err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	eventType := EventType(event)
	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(eventType)},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if partitionKey := p.getPartitionKey(event); partitionKey != "" {
		message.Key = sarama.StringEncoder(partitionKey)
	}

	maxRetries := p.config.KafkaRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	baseDelay := 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		sendCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		done := make(chan error, 1)

		go func(attempt int) {
			partition, offset, err := p.producer.SendMessage(message)
			if err != nil {
				done <- err
				return
			}
			p.logger.Info("Event published to Kafka",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
				zap.String("event-type", eventType),
				zap.Int("attempt", attempt+1),
			)
			done <- nil
		}(attempt)

		select {
		case err := <-done:
			cancel()
			if err == nil {
				return nil
			}
			p.logger.Warn("Failed to publish event to Kafka, retrying",
				zap.String("topic", topic),
				zap.Error(err),
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
			)
		case <-sendCtx.Done():
			cancel()
			p.logger.Warn("Timeout publishing event to Kafka, retrying",
				zap.String("topic", topic),
				zap.Error(sendCtx.Err()),
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
			)
		}

		if attempt < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<uint(attempt)) // 100ms, 200ms, 400ms
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish event to Kafka after %d attempts", maxRetries)
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// getTopicForEvent determines the Kafka topic based on event type
func (p *KafkaEventPublisher) getTopicForEvent(event interface{}) (string, error) {
	collection, ok := CollectionFor(EventType(event))
	if !ok {
		return "", fmt.Errorf("unknown event type: %T", event)
	}
	switch collection {
	case "invoices":
		return p.config.KafkaTopicInvoices, nil
	case "buyers":
		return p.config.KafkaTopicBuyers, nil
	default:
		return p.config.KafkaTopicProducts, nil
	}
}

// getPartitionKey returns the record id so events for one record stay ordered
func (p *KafkaEventPublisher) getPartitionKey(event interface{}) string {
	switch e := event.(type) {
	case InvoiceCreatedEvent:
		return e.InvoiceID
	case InvoiceUpdatedEvent:
		return e.InvoiceID
	case InvoiceDeletedEvent:
		return e.InvoiceID
	case BuyerCreatedEvent:
		return e.BuyerID
	case BuyerUpdatedEvent:
		return e.BuyerID
	case BuyerDeletedEvent:
		return e.BuyerID
	case ProductCreatedEvent:
		return e.ProductID
	case ProductUpdatedEvent:
		return e.ProductID
	case ProductDeletedEvent:
		return e.ProductID
	case StockAdjustedEvent:
		return e.ProductID
	}
	return ""
}
