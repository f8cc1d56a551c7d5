// Package kafka publishes order integration events to a Kafka topic.
// Emission is decoupled from the transactional write: events are sent after
// commit and a broker failure is logged, never surfaced to the transition.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"pharmadelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire format of one status change.
type orderChangedEvent struct {
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	CustomerStatus string    `json:"customerStatus"`
	RiderID        *string   `json:"riderId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// OrderEventPublisher writes order-changed events keyed by order id, so all
// events of one order land in the same partition in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}, nil
}

// PublishOrderChanged emits the order's current status. Failures are logged
// and returned, but callers treat them as non-fatal: the transition has
// already committed.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event := orderChangedEvent{
		OrderID:        aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID().String(),
		Status:         aggregate.Status().String(),
		CustomerStatus: aggregate.Status().CustomerFacing(),
		OccurredAt:     time.Now().UTC(),
	}
	if riderID, assigned := aggregate.Assignment().RiderID(); assigned {
		raw := riderID.String()
		event.RiderID = &raw
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order-changed event",
			slog.String("orderId", event.OrderID),
			slog.String("status", event.Status),
			slog.Any("error", err))
		return err
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
