package queries

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableOrdersQueryHandler reads the rider's work view from the
// database: the shared pool of claimable orders plus the rider's own
// in-flight deliveries, newest first.
type ListAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableOrdersQueryHandler creates a handler for rider work views.
func NewListAvailableOrdersQueryHandler(db *gorm.DB) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{db: db}
}

// Handle executes the availability query.
func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]ListAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riderID := query.RiderID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total,
			rider_id,
			created_at
		FROM orders
		WHERE (status = ? AND rider_id IS NULL)
		   OR (rider_id = ? AND status IN (?, ?, ?, ?))
		ORDER BY created_at DESC
	`,
		order.Ready.String(),
		riderID,
		order.RiderReceived.String(),
		order.OutForDelivery.String(),
		order.PendingConfirmation.String(),
		order.Delivered.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListAvailableOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			status       string
			total        int64
			boundRiderID uuid.NullUUID
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &status, &total, &boundRiderID, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, ListAvailableOrdersQueryResponse{
			ID:        orderID,
			Status:    status,
			Total:     total,
			Mine:      boundRiderID.Valid && boundRiderID.UUID == query.RiderID().Bytes(),
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
