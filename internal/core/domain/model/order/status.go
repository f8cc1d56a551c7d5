package order

import (
	"fmt"

	"pharmadelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow:
//
//	pending -> confirmed -> preparing -> ready -> rider_received
//	        -> out_for_delivery -> pending_confirmation -> delivered
//
// Side branch: cancelled, reachable from pending, confirmed, preparing, or
// ready via administrative rejection only.
//
// PendingConfirmation is internal-only: the rider has reported delivery and
// administrative review is outstanding, but the customer already sees the
// order as delivered (see CustomerFacing).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	Pending

	// Confirmed indicates an admin accepted the order.
	Confirmed

	// Preparing indicates the pharmacy is assembling the order.
	Preparing

	// Ready indicates the order is packed and open for rider claims
	// or administrative assignment.
	Ready

	// RiderReceived indicates a rider is bound to the order and has
	// picked it up at the pharmacy.
	RiderReceived

	// OutForDelivery indicates the rider confirmed pickup and is en route.
	OutForDelivery

	// PendingConfirmation indicates the rider reported delivery with proof
	// and an admin has not yet reviewed it. Internal-only state.
	PendingConfirmation

	// Delivered indicates the delivery was administratively confirmed.
	// This is a final state.
	Delivered

	// Cancelled indicates the order was rejected by an admin.
	// This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		Pending:             "pending",
		Confirmed:           "confirmed",
		Preparing:           "preparing",
		Ready:               "ready",
		RiderReceived:       "rider_received",
		OutForDelivery:      "out_for_delivery",
		PendingConfirmation: "pending_confirmation",
		Delivered:           "delivered",
		Cancelled:           "cancelled",
	}
}

// StatusFromString converts a persisted enum string back to a Status.
// Returns an error for strings outside the closed enum.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the closed enum.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted enum string for the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CustomerFacing returns the status vocabulary shown to customers.
// PendingConfirmation is projected as "delivered": proof-of-delivery review
// is an internal concern and the customer experience stays optimistic.
func (s Status) CustomerFacing() string {
	if s == PendingConfirmation {
		return Delivered.String()
	}
	return s.String()
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment: a rider is bound if and only if the order has progressed
// to rider_received or beyond.
func (s Status) ValidateCanHaveRider(assigned bool) error {
	requiresRider := s == RiderReceived || s == OutForDelivery || s == PendingConfirmation || s == Delivered

	if assigned && !requiresRider {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	if !assigned && requiresRider {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	return nil
}

// Confirm transitions pending -> confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("confirm", s.String())
	}
	return Confirmed, nil
}

// Prepare transitions confirmed -> preparing.
func (s Status) Prepare() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewStateConflictError("prepare", s.String())
	}
	return Preparing, nil
}

// MarkReady transitions preparing -> ready.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return 0, errs.NewStateConflictError("mark ready", s.String())
	}
	return Ready, nil
}

// Assign transitions ready -> rider_received.
// Both administrative assignment and rider claims pass through here.
func (s Status) Assign() (Status, error) {
	if s != Ready {
		return 0, errs.NewStateConflictError("assign rider", s.String())
	}
	return RiderReceived, nil
}

// ConfirmPickup transitions rider_received -> out_for_delivery.
func (s Status) ConfirmPickup() (Status, error) {
	if s != RiderReceived {
		return 0, errs.NewStateConflictError("confirm pickup", s.String())
	}
	return OutForDelivery, nil
}

// MarkDelivered transitions rider_received or out_for_delivery ->
// pending_confirmation. Riders may report delivery straight from
// rider_received when they skipped the explicit pickup confirmation.
func (s Status) MarkDelivered() (Status, error) {
	if s != RiderReceived && s != OutForDelivery {
		return 0, errs.NewStateConflictError("mark delivered", s.String())
	}
	return PendingConfirmation, nil
}

// ConfirmDelivery transitions pending_confirmation -> delivered.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != PendingConfirmation {
		return 0, errs.NewStateConflictError("confirm delivery", s.String())
	}
	return Delivered, nil
}

// Reject transitions any pre-delivery administrative state to cancelled.
// Orders with a rider bound or already delivered cannot be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending && s != Confirmed && s != Preparing && s != Ready {
		return 0, errs.NewStateConflictError("reject", s.String())
	}
	return Cancelled, nil
}
