package events

import (
	"context"
	"encoding/json"
	"time"

	"castsync/internal/logger"

	"github.com/segmentio/kafka-go"
)

const Topic = "catalog-events"

const (
	TypeProductCreated     = "product.created"
	TypeProductUpdated     = "product.updated"
	TypeProductDeactivated = "product.deactivated"
)

// Event is the message shape downstream consumers read off the topic.
type Event struct {
	Type      string                 `json:"type"`
	SKU       string                 `json:"sku"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Publisher emits catalog change events. A nil Publisher is valid and
// drops everything, for deployments without Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, logger *logger.Logger) *Publisher {
	if brokers == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Publish sends one event, logging failures instead of propagating
// them; event delivery never blocks a sync pass.
func (p *Publisher) Publish(eventType, sku string, data map[string]interface{}) {
	if p == nil {
		return
	}
	event := Event{
		Type:      eventType,
		SKU:       sku,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(sku), Value: value}); err != nil {
		p.logger.Error("Failed to publish %s event for %s: %v", eventType, sku, err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
