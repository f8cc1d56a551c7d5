// Package notification provides the user-facing message entity created by
// the fulfillment lifecycle and the pure template functions that render one
// message per transition.
package notification

import (
	"errors"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification constructor")
)

// Notification is one user-facing message. Its read flag may only be flipped
// by the recipient.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	kind        Type
	title       string
	message     string
	orderID     *kernel.UUID
	read        bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewNotification materializes a rendered template into a notification entity.
func NewNotification(id kernel.UUID, result TemplateResult, now time.Time) (*Notification, error) {
	if err := errors.Join(id.Validate(), result.RecipientID.Validate()); err != nil {
		return nil, err
	}
	if err := result.Type.Validate(); err != nil {
		return nil, err
	}
	if result.Title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Notification{
		id:          id,
		recipientID: result.RecipientID,
		kind:        result.Type,
		title:       result.Title,
		message:     result.Message,
		orderID:     result.OrderID,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id, recipientID kernel.UUID,
	kind Type,
	title, message string,
	orderID *kernel.UUID,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		kind:        kind,
		title:       title,
		message:     message,
		orderID:     orderID,
		read:        read,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the user the message is addressed to.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Type returns the transition tag the message was rendered from.
func (n *Notification) Type() Type {
	return n.kind
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the rendered body.
func (n *Notification) Message() string {
	return n.message
}

// OrderID returns the linked order, or nil for out-of-band messages.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// Read reports whether the recipient has seen the message.
func (n *Notification) Read() bool {
	return n.read
}

// CreatedAt returns the emission time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the read flag. Only the recipient may do so; anyone else
// gets a ForbiddenError.
func (n *Notification) MarkRead(actorID kernel.UUID) error {
	if !n.recipientID.IsEqual(actorID) {
		return errs.NewForbiddenError(actorID.String(), "notification "+n.id.String())
	}
	n.read = true
	return nil
}
