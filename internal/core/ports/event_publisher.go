package ports

import (
	"context"

	"pharmadelivery/internal/core/domain/model/order"
)

// OrderEventPublisher emits an integration event after an order's status
// changed. Emission is decoupled from the transactional write: a publish
// failure must never roll back the committed transition.
type OrderEventPublisher interface {
	// PublishOrderChanged emits the order's current status to interested
	// consumers.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
