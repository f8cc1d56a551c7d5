package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

// estimatedLeadTime is the delivery window promised at checkout.
const estimatedLeadTime = 72 * time.Hour

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through the NewDelivery constructor.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// DeliveryStatus mirrors the subset of the order lifecycle that the physical
// shipment record tracks: pending until the delivery is administratively
// confirmed, then delivered.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined status.
	DeliveryStatusUnknown DeliveryStatus = iota
	// DeliveryPending means the shipment has not been confirmed delivered.
	DeliveryPending
	// DeliveryDelivered means the shipment was confirmed delivered.
	DeliveryDelivered
)

// String returns the persisted enum string for the delivery status.
func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryPending:
		return "pending"
	case DeliveryDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// DeliveryStatusFromString converts a persisted enum string back to a DeliveryStatus.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	switch s {
	case "pending":
		return DeliveryPending, nil
	case "delivered":
		return DeliveryDelivered, nil
	default:
		return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%q is not a valid delivery status", s))
	}
}

// NewTrackingNumber generates an opaque customer-facing tracking token.
func NewTrackingNumber() string {
	raw := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")
	return "TRK-" + strings.ToUpper(raw[:12])
}

// Delivery is the satellite record mirroring the physical fulfillment of an
// order. It is created atomically with its owning Order and carries the
// tracking metadata exposed to the customer.
type Delivery struct {
	id             kernel.UUID
	orderID        kernel.UUID
	addressID      kernel.UUID
	status         DeliveryStatus
	estimatedDate  time.Time
	trackingNumber string
	deliveredAt    *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates the shipment record for an order placed at placedAt.
// The estimated date is the placement time plus the promised lead time.
func NewDelivery(id, orderID, addressID kernel.UUID, placedAt time.Time, trackingNumber string) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), addressID.Validate()); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	return &Delivery{
		id:             id,
		orderID:        orderID,
		addressID:      addressID,
		status:         DeliveryPending,
		estimatedDate:  placedAt.Add(estimatedLeadTime),
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id, orderID, addressID kernel.UUID,
	status DeliveryStatus,
	estimatedDate time.Time,
	trackingNumber string,
	deliveredAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), addressID.Validate()); err != nil {
		return nil, err
	}
	if status != DeliveryPending && status != DeliveryDelivered {
		return nil, errs.NewValueIsInvalidError("deliveryStatus")
	}

	return &Delivery{
		id:             id,
		orderID:        orderID,
		addressID:      addressID,
		status:         status,
		estimatedDate:  estimatedDate,
		trackingNumber: trackingNumber,
		deliveredAt:    deliveredAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery record's identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// AddressID returns the destination address reference.
func (d *Delivery) AddressID() kernel.UUID {
	return d.addressID
}

// Status returns the current delivery status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// EstimatedDate returns the delivery date promised at checkout.
func (d *Delivery) EstimatedDate() time.Time {
	return d.estimatedDate
}

// TrackingNumber returns the customer-facing tracking token.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// DeliveredAt returns the confirmed delivery time, or nil while pending.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// MarkDelivered flips the record to delivered at the given time.
// Only a pending record can be marked delivered.
func (d *Delivery) MarkDelivered(now time.Time) error {
	if d.status != DeliveryPending {
		return errs.NewStateConflictError("mark delivery delivered", d.status.String())
	}
	d.status = DeliveryDelivered
	d.deliveredAt = &now
	return nil
}
