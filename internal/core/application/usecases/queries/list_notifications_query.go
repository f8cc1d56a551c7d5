package queries

import (
	"errors"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves a user's notifications, newest first.
type ListNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a notification listing query.
func NewListNotificationsQuery(userID kernel.UUID) (ListNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// UserID returns the notifications' recipient.
func (q ListNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// ListNotificationsQueryResponse is one notification row.
type ListNotificationsQueryResponse struct {
	ID        kernel.UUID
	Type      string
	Title     string
	Message   string
	OrderID   *kernel.UUID
	Read      bool
	CreatedAt time.Time
}
