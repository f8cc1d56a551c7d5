package queries

import (
	"context"
	"database/sql"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order listings from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.total,
			o.archived,
			d.tracking_number,
			o.created_at
		FROM orders o
		LEFT JOIN deliveries d ON d.order_id = o.id
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.CustomerID() != nil {
		sqlQuery += " AND o.customer_id = ?"
		args = append(args, query.CustomerID().Bytes())
	}
	if query.Archived() != nil {
		sqlQuery += " AND o.archived = ?"
		args = append(args, *query.Archived())
	}

	sqlQuery += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id             uuid.UUID
			customerID     uuid.UUID
			status         string
			total          int64
			archived       bool
			trackingNumber sql.NullString
			createdAt      time.Time
		)

		if err = rows.Scan(&id, &customerID, &status, &total, &archived, &trackingNumber, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		parsedStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, ListOrdersQueryResponse{
			ID:             orderID,
			CustomerID:     ownerID,
			Status:         parsedStatus.String(),
			CustomerStatus: parsedStatus.CustomerFacing(),
			Total:          total,
			Archived:       archived,
			TrackingNumber: trackingNumber.String,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
