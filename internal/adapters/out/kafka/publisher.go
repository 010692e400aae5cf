// Package kafka publishes order change events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

// BatchTimeout caps how long a write waits to fill a batch. Publishing runs on
// the request path, so the library's one second default would show up as
// request latency.
const BatchTimeout = 10 * time.Millisecond

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ParseBrokers splits a comma separated broker list and drops empty entries.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewWriter creates a writer that hashes message keys onto partitions, so
// every event of one order lands on the same partition in commit order.
func NewWriter(brokers []string, topic string) (*kafka.Writer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("kafka: topic is required")
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           BatchTimeout,
		AllowAutoTopicCreation: true,
	}, nil
}

// OrderEventPublisher implements ports.OrderEventPublisher.
type OrderEventPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

func NewOrderEventPublisher(writer MessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: writer,
		now:    time.Now,
	}
}

// PublishOrderChanged writes event as JSON keyed by the order id.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode order changed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("order.changed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order %s: %w", event.OrderID, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
