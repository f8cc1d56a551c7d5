package notification

import (
	"fmt"

	"pharmadelivery/internal/pkg/errs"
)

// Type tags a notification with the lifecycle transition that produced it.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota
	// TypeOrderPlaced is emitted when a new order is placed.
	TypeOrderPlaced
	// TypeOrderConfirmed is emitted when an admin confirms the order.
	TypeOrderConfirmed
	// TypeOrderReady is emitted when the order is ready for pickup.
	TypeOrderReady
	// TypeRiderAssigned is emitted when a rider is bound to the order.
	TypeRiderAssigned
	// TypeOutForDelivery is emitted when the rider confirms pickup.
	TypeOutForDelivery
	// TypeDelivered is emitted when the rider marks the order delivered.
	TypeDelivered
	// TypeOrderCancelled is emitted when an admin rejects the order.
	TypeOrderCancelled
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:        "unknown",
		TypeOrderPlaced:    "order_placed",
		TypeOrderConfirmed: "order_confirmed",
		TypeOrderReady:     "order_ready",
		TypeRiderAssigned:  "rider_assigned",
		TypeOutForDelivery: "out_for_delivery",
		TypeDelivered:      "delivered",
		TypeOrderCancelled: "order_cancelled",
	}
}

// TypeFromString converts a persisted enum string back to a Type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("notificationType",
		fmt.Errorf("%q is not a valid notification type", s))
}

// Validate checks if the Type value is a member of the closed enum.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the persisted enum string for the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
