package queries

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads a user's notification feed.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification feeds.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the feed query, newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			title,
			message,
			order_id,
			read,
			created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]ListNotificationsQueryResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			kind      string
			title     string
			message   string
			orderID   uuid.NullUUID
			read      bool
			createdAt time.Time
		)

		if err = rows.Scan(&id, &kind, &title, &message, &orderID, &read, &createdAt); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		response := ListNotificationsQueryResponse{
			ID:        notificationID,
			Type:      kind,
			Title:     title,
			Message:   message,
			Read:      read,
			CreatedAt: createdAt,
		}

		if orderID.Valid {
			linkedID, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.OrderID = &linkedID
		}

		notifications = append(notifications, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
