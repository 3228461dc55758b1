package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"billing-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() *config.Config {
	return &config.Config{
		KafkaTopicInvoices: "billing.invoices",
		KafkaTopicBuyers:   "billing.buyers",
		KafkaTopicProducts: "billing.products",
		KafkaRetries:       2,
	}
}

func TestKafkaEventPublisher_TopicAndTypeMapping(t *testing.T) {
	publisher := &KafkaEventPublisher{logger: zap.NewNop(), config: testConfig()}
	now := time.Now()

	testCases := []struct {
		event     interface{}
		eventType string
		topic     string
		key       string
	}{
		{InvoiceCreatedEvent{InvoiceID: "i-1", OccurredAt: now}, InvoiceCreated, "billing.invoices", "i-1"},
		{InvoiceDeletedEvent{InvoiceID: "i-2", OccurredAt: now}, InvoiceDeleted, "billing.invoices", "i-2"},
		{BuyerUpdatedEvent{BuyerID: "b-1", OccurredAt: now}, BuyerUpdated, "billing.buyers", "b-1"},
		{ProductCreatedEvent{ProductID: "p-1", OccurredAt: now}, ProductCreated, "billing.products", "p-1"},
		{StockAdjustedEvent{ProductID: "p-2", Delta: -3, OccurredAt: now}, StockAdjusted, "billing.products", "p-2"},
	}

	for _, tc := range testCases {
		t.Run(tc.eventType, func(t *testing.T) {
			assert.Equal(t, tc.eventType, EventType(tc.event))

			topic, err := publisher.getTopicForEvent(tc.event)
			require.NoError(t, err)
			assert.Equal(t, tc.topic, topic)
			assert.Equal(t, tc.key, publisher.getPartitionKey(tc.event))
		})
	}
}

func TestKafkaEventPublisher_UnknownEvent(t *testing.T) {
	publisher := &KafkaEventPublisher{logger: zap.NewNop(), config: testConfig()}

	err := publisher.Publish(context.Background(), struct{ Foo string }{"bar"})

	assert.Error(t, err)
	assert.Equal(t, "Unknown", EventType(struct{}{}))
}

func TestKafkaEventPublisher_PublishSendsPayload(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var payload map[string]interface{}
		if err := json.Unmarshal(val, &payload); err != nil {
			return err
		}
		if payload["productId"] != "p-1" || payload["newStock"] != 7.0 {
			return errors.New("unexpected payload")
		}
		return nil
	})
	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())

	err := publisher.Publish(context.Background(), StockAdjustedEvent{ProductID: "p-1", Delta: 2, NewStock: 7})

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_RetriesThenFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())

	err := publisher.Publish(context.Background(), BuyerDeletedEvent{BuyerID: "b-1"})

	assert.Error(t, err)
	require.NoError(t, publisher.Close())
}

func TestInMemoryEventPublisher_Records(t *testing.T) {
	publisher := NewEventPublisher(zap.NewNop())

	require.NoError(t, publisher.Publish(context.Background(), BuyerCreatedEvent{BuyerID: "b-1"}))

	require.Len(t, publisher.Events(), 1)
	assert.Equal(t, BuyerCreated, EventType(publisher.Events()[0]))
}

func TestLogEventPublisher_LogsWithoutKeeping(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLogEventPublisher(zap.New(core))

	for i := 0; i < 3; i++ {
		require.NoError(t, publisher.Publish(context.Background(), StockAdjustedEvent{ProductID: "p-1", Delta: -15}))
	}

	entries := logs.FilterMessage("Event published (log only)").All()
	require.Len(t, entries, 3)
	assert.Equal(t, StockAdjusted, entries[0].ContextMap()["event-type"])
	assert.NoError(t, publisher.Close())
}

func TestCollectionFor(t *testing.T) {
	collection, ok := CollectionFor(StockAdjusted)
	assert.True(t, ok)
	assert.Equal(t, "products", collection)

	_, ok = CollectionFor("InventoryItemCreated")
	assert.False(t, ok)
}
