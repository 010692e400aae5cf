package ports

import (
	"context"
	"time"
)

// OrderChanged is published after a committed order state change.
type OrderChanged struct {
	OrderID       string    `json:"orderId"`
	BuyerID       string    `json:"buyerId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentType   string    `json:"paymentType"`
	Total         string    `json:"total"`
	Version       int64     `json:"version"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// OrderEventPublisher delivers order change events to the message broker.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChanged) error
}
