package order

import (
	"errors"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

// Pricing policy fixed at checkout. Amounts are integer cents.
const (
	// TaxRatePercent is applied to the subtotal when an order is placed.
	TaxRatePercent = 12
	// ShippingFee is the flat delivery charge. Currently free.
	ShippingFee int64 = 0
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned when placing an order with no items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrDeliveryPhotoIsRequired is returned when a rider reports delivery
	// without attaching proof.
	ErrDeliveryPhotoIsRequired = errs.NewValueIsRequiredError("delivery photo")
)

// Order is the aggregate root of the fulfillment lifecycle. It owns the line
// items, the totals fixed at checkout, the status state machine, the rider
// assignment, and the Delivery satellite record.
//
// Order maintains these invariants:
//   - total = subtotal + tax + shipping, computed once at creation
//   - a rider is bound if and only if status is rider_received or beyond
//   - the Delivery record exists for the whole life of the order
//   - every transition is validated; a failed precondition mutates nothing
//
// All mutation goes through the transition methods below; the struct uses
// private fields so invariants cannot be bypassed.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	addressID  kernel.UUID
	items      []LineItem

	subtotal int64
	tax      int64
	shipping int64
	total    int64

	status     Status
	assignment Assignment
	archived   bool

	createdAt        time.Time
	confirmedAt      *time.Time
	preparingAt      *time.Time
	readyAt          *time.Time
	riderReceivedAt  *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time

	deliveryPhotoURL string
	delivery         *Delivery

	guard guard.ConstructorGuard
}

// NewOrder creates an order at checkout time in pending status.
//
// Totals are computed here and never again: subtotal is the sum of the line
// item subtotals, tax is TaxRatePercent of the subtotal, shipping is the flat
// fee. The Delivery satellite record is created atomically with the order,
// carrying a fresh tracking number and an estimated date derived from now.
func NewOrder(id, customerID, addressID kernel.UUID, items []LineItem, now time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), addressID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrLineItemsAreRequired
	}

	var subtotal int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		subtotal += item.Subtotal()
	}

	tax := subtotal * TaxRatePercent / 100

	delivery, err := NewDelivery(kernel.NewUUID(), id, addressID, now, NewTrackingNumber())
	if err != nil {
		return nil, err
	}

	return &Order{
		id:         id,
		customerID: customerID,
		addressID:  addressID,
		items:      append([]LineItem(nil), items...),
		subtotal:   subtotal,
		tax:        tax,
		shipping:   ShippingFee,
		total:      subtotal + tax + ShippingFee,
		status:     Pending,
		assignment: Unassigned(),
		createdAt:  now,
		delivery:   delivery,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// Order aggregate. Totals are restored as stored, never recomputed.
type RestoreOrderParams struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	AddressID  kernel.UUID
	Items      []LineItem

	Subtotal int64
	Tax      int64
	Shipping int64
	Total    int64

	Status     Status
	Assignment Assignment
	Archived   bool

	CreatedAt        time.Time
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	ReadyAt          *time.Time
	RiderReceivedAt  *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time

	DeliveryPhotoURL string
	Delivery         *Delivery
}

// RestoreOrder reconstructs an Order from persistence, re-checking the
// aggregate invariants so corrupted rows cannot become live aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.CustomerID.Validate(),
		params.AddressID.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(params.Items) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	if err := params.Status.ValidateCanHaveRider(params.Assignment.IsAssigned()); err != nil {
		return nil, err
	}
	if err := params.Delivery.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:               params.ID,
		customerID:       params.CustomerID,
		addressID:        params.AddressID,
		items:            append([]LineItem(nil), params.Items...),
		subtotal:         params.Subtotal,
		tax:              params.Tax,
		shipping:         params.Shipping,
		total:            params.Total,
		status:           params.Status,
		assignment:       params.Assignment,
		archived:         params.Archived,
		createdAt:        params.CreatedAt,
		confirmedAt:      params.ConfirmedAt,
		preparingAt:      params.PreparingAt,
		readyAt:          params.ReadyAt,
		riderReceivedAt:  params.RiderReceivedAt,
		outForDeliveryAt: params.OutForDeliveryAt,
		deliveredAt:      params.DeliveredAt,
		deliveryPhotoURL: params.DeliveryPhotoURL,
		delivery:         params.Delivery,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was properly constructed and its invariants hold.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	if o.total != o.subtotal+o.tax+o.shipping {
		return errs.NewValueIsInvalidError("total")
	}
	if err := o.status.ValidateCanHaveRider(o.assignment.IsAssigned()); err != nil {
		return err
	}
	return o.delivery.Validate()
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// AddressID returns the delivery address reference.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Subtotal returns the sum of the line item subtotals in cents.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Tax returns the tax amount in cents, fixed at checkout.
func (o *Order) Tax() int64 {
	return o.tax
}

// Shipping returns the shipping charge in cents.
func (o *Order) Shipping() int64 {
	return o.shipping
}

// Total returns subtotal + tax + shipping in cents.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Assignment returns the current rider binding.
func (o *Order) Assignment() Assignment {
	return o.assignment
}

// Archived reports whether the order is hidden from default listings.
func (o *Order) Archived() bool {
	return o.archived
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// PreparingAt returns when preparation started, or nil.
func (o *Order) PreparingAt() *time.Time {
	return o.preparingAt
}

// ReadyAt returns when the order became ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// RiderReceivedAt returns when a rider was bound, or nil.
func (o *Order) RiderReceivedAt() *time.Time {
	return o.riderReceivedAt
}

// OutForDeliveryAt returns when the rider confirmed pickup, or nil.
func (o *Order) OutForDeliveryAt() *time.Time {
	return o.outForDeliveryAt
}

// DeliveredAt returns when delivery was administratively confirmed, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// DeliveryPhotoURL returns the proof-of-delivery attachment, if any.
func (o *Order) DeliveryPhotoURL() string {
	return o.deliveryPhotoURL
}

// Delivery returns the satellite shipment record.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Confirm applies the admin confirmation: pending -> confirmed.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.confirmedAt = &now
	return nil
}

// Prepare applies the admin preparation start: confirmed -> preparing.
func (o *Order) Prepare(now time.Time) error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.preparingAt = &now
	return nil
}

// MarkReady applies the admin ready marking: preparing -> ready.
// A ready order enters the competable pool for rider claims.
func (o *Order) MarkReady(now time.Time) error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.readyAt = &now
	return nil
}

// AssignRider binds a rider to a ready, unassigned order:
// ready -> rider_received. Used both by administrative assignment and as the
// domain mirror of a successful rider claim.
func (o *Order) AssignRider(riderID kernel.UUID, now time.Time) error {
	assignment, err := AssignedTo(riderID)
	if err != nil {
		return err
	}

	if o.assignment.IsAssigned() {
		return errs.NewStateConflictError("assign rider", o.status.String())
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = assignment
	o.riderReceivedAt = &now
	return nil
}

// ConfirmPickup records the bound rider leaving the pharmacy:
// rider_received -> out_for_delivery. Only the bound rider may confirm.
func (o *Order) ConfirmPickup(riderID kernel.UUID, now time.Time) error {
	if err := o.ensureHeldBy(riderID); err != nil {
		return err
	}

	newStatus, err := o.status.ConfirmPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.outForDeliveryAt = &now
	return nil
}

// MarkDelivered records the bound rider reporting delivery with photo proof:
// rider_received or out_for_delivery -> pending_confirmation. The customer
// already sees the order as delivered; administrative review follows.
func (o *Order) MarkDelivered(riderID kernel.UUID, photoURL string, now time.Time) error {
	if err := o.ensureHeldBy(riderID); err != nil {
		return err
	}
	if photoURL == "" {
		return ErrDeliveryPhotoIsRequired
	}

	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPhotoURL = photoURL
	return nil
}

// ConfirmDelivery applies the administrative proof-of-delivery review:
// pending_confirmation -> delivered. The Delivery satellite record flips to
// delivered with the same timestamp.
func (o *Order) ConfirmDelivery(now time.Time) error {
	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}
	if err = o.delivery.MarkDelivered(now); err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Reject applies the administrative cancellation of a pre-delivery order.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Archive hides a finished order from default listings.
// Only terminal orders can be archived.
func (o *Order) Archive() error {
	if !o.status.IsTerminal() {
		return errs.NewStateConflictError("archive", o.status.String())
	}
	o.archived = true
	return nil
}

func (o *Order) ensureHeldBy(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !o.assignment.IsHeldBy(riderID) {
		return errs.NewForbiddenError(riderID.String(), "order "+o.id.String())
	}
	return nil
}
