package kafka

import (
	"context"
	"fmt"
	"time"

	"billing-service/internal/cache"
	"billing-service/internal/config"
	"billing-service/internal/events"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Consumer listens to the change topics and drops cached read views that
// other instances made stale.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	cache         cache.Cache
	logger        *zap.Logger
	config        *config.Config
	topics        []string
}

// NewConsumer creates a new Kafka consumer for cache invalidation
func NewConsumer(cfg *config.Config, cacheClient cache.Cache, logger *zap.Logger) (*Consumer, error) {
	logger.Info("Creating Kafka consumer",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Version = sarama.V2_8_0_0
	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second
	saramaConfig.Metadata.Retry.Max = 3
	saramaConfig.Metadata.Retry.Backoff = 250 * time.Millisecond

	consumerGroup, err := sarama.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaGroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		consumerGroup: consumerGroup,
		cache:         cacheClient,
		logger:        logger,
		config:        cfg,
		topics:        []string{cfg.KafkaTopicInvoices, cfg.KafkaTopicBuyers, cfg.KafkaTopicProducts},
	}, nil
}

// Start consumes until ctx is cancelled or the group fails
func (c *Consumer) Start(ctx context.Context) error {
	handler := newCacheInvalidationHandler(c.cache, c.logger)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.logger.Error("Consumer error", zap.Error(err))
		}
	}()

	c.logger.Info("Kafka consumer started for cache invalidation",
		zap.Strings("topics", c.topics),
		zap.String("group_id", c.config.KafkaGroupID),
	)

	for {
		if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
			return fmt.Errorf("consume: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close closes the consumer
func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

// cacheInvalidationHandler implements sarama.ConsumerGroupHandler
type cacheInvalidationHandler struct {
	cache  cache.Cache
	logger *zap.Logger
}

func newCacheInvalidationHandler(c cache.Cache, logger *zap.Logger) *cacheInvalidationHandler {
	return &cacheInvalidationHandler{cache: c, logger: logger}
}

func (h *cacheInvalidationHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *cacheInvalidationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *cacheInvalidationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			h.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage invalidates the views for the collection the event touched.
// Malformed or unknown messages are logged and skipped.
func (h *cacheInvalidationHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	eventType := extractEventType(message.Headers)
	if eventType == "" {
		h.logger.Warn("Message without event type, skipping",
			zap.String("topic", message.Topic),
			zap.Int32("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return
	}

	collection, ok := events.CollectionFor(eventType)
	if !ok {
		h.logger.Warn("Unknown event type, skipping",
			zap.String("event_type", eventType),
			zap.String("topic", message.Topic),
		)
		return
	}

	cache.InvalidateCollection(ctx, h.cache, collection, h.logger)
	h.logger.Debug("Cache invalidated",
		zap.String("event_type", eventType),
		zap.String("collection", collection),
	)
}

func extractEventType(headers []*sarama.RecordHeader) string {
	for _, header := range headers {
		if header != nil && string(header.Key) == "event-type" {
			return string(header.Value)
		}
	}
	return ""
}
