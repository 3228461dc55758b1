package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
	Close() error
}

// Event type names, carried in the "event-type" header.
const (
	InvoiceCreated = "InvoiceCreated"
	InvoiceUpdated = "InvoiceUpdated"
	InvoiceDeleted = "InvoiceDeleted"
	BuyerCreated   = "BuyerCreated"
	BuyerUpdated   = "BuyerUpdated"
	BuyerDeleted   = "BuyerDeleted"
	ProductCreated = "ProductCreated"
	ProductUpdated = "ProductUpdated"
	ProductDeleted = "ProductDeleted"
	StockAdjusted  = "StockAdjusted"
)

// Invoice events
type InvoiceCreatedEvent struct {
	InvoiceID   string    `json:"invoiceId"`
	InvoiceNo   string    `json:"invoiceNo"`
	BuyerID     string    `json:"buyerId,omitempty"`
	BuyerName   string    `json:"buyerName"`
	TotalAmount float64   `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type InvoiceUpdatedEvent struct {
	InvoiceID   string    `json:"invoiceId"`
	InvoiceNo   string    `json:"invoiceNo"`
	TotalAmount float64   `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type InvoiceDeletedEvent struct {
	InvoiceID  string    `json:"invoiceId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Buyer events
type BuyerCreatedEvent struct {
	BuyerID    string    `json:"buyerId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

type BuyerUpdatedEvent struct {
	BuyerID    string    `json:"buyerId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

type BuyerDeletedEvent struct {
	BuyerID    string    `json:"buyerId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Product events
type ProductCreatedEvent struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	StockQuantity float64   `json:"stockQuantity"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type ProductUpdatedEvent struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	StockQuantity float64   `json:"stockQuantity"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type ProductDeletedEvent struct {
	ProductID  string    `json:"productId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type StockAdjustedEvent struct {
	ProductID  string    `json:"productId"`
	Delta      float64   `json:"delta"`
	NewStock   float64   `json:"newStock"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventType returns the type name of a known event, or "Unknown".
func EventType(event interface{}) string {
	switch event.(type) {
	case InvoiceCreatedEvent:
		return InvoiceCreated
	case InvoiceUpdatedEvent:
		return InvoiceUpdated
	case InvoiceDeletedEvent:
		return InvoiceDeleted
	case BuyerCreatedEvent:
		return BuyerCreated
	case BuyerUpdatedEvent:
		return BuyerUpdated
	case BuyerDeletedEvent:
		return BuyerDeleted
	case ProductCreatedEvent:
		return ProductCreated
	case ProductUpdatedEvent:
		return ProductUpdated
	case ProductDeletedEvent:
		return ProductDeleted
	case StockAdjustedEvent:
		return StockAdjusted
	default:
		return "Unknown"
	}
}

// CollectionFor maps an event type to the collection it changed.
func CollectionFor(eventType string) (string, bool) {
	switch eventType {
	case InvoiceCreated, InvoiceUpdated, InvoiceDeleted:
		return "invoices", true
	case BuyerCreated, BuyerUpdated, BuyerDeleted:
		return "buyers", true
	case ProductCreated, ProductUpdated, ProductDeleted, StockAdjusted:
		return "products", true
	default:
		return "", false
	}
}

// LogEventPublisher writes each event to the log and keeps nothing. It is
// the publisher when Kafka is off.
type LogEventPublisher struct {
	logger *zap.Logger
}

func NewLogEventPublisher(logger *zap.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

func (p *LogEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.logger.Info("Event published (log only)",
		zap.String("event-type", EventType(event)),
		zap.Any("event", event),
	)
	return nil
}

func (p *LogEventPublisher) Close() error {
	return nil
}

// InMemoryEventPublisher records every event in process, for tests.
type InMemoryEventPublisher struct {
	logger *zap.Logger
	mu     sync.Mutex
	events []interface{}
}

func NewEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	p.logger.Debug("Event published (in-memory)", zap.String("event-type", EventType(event)))
	return nil
}

// Events returns a copy of everything published so far.
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interface{}(nil), p.events...)
}

func (p *InMemoryEventPublisher) Close() error {
	return nil
}
