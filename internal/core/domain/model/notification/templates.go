package notification

import (
	"fmt"
	"strings"

	"pharmadelivery/internal/core/domain/model/kernel"
)

// TemplateResult is a rendered message ready to be persisted by the
// dispatcher. Templates are pure: no I/O, deterministic for the same inputs.
type TemplateResult struct {
	RecipientID kernel.UUID
	Type        Type
	Title       string
	Message     string
	OrderID     *kernel.UUID
}

// orderRef renders the short human-facing order reference used in messages.
func orderRef(orderID kernel.UUID) string {
	return "#" + strings.ToUpper(orderID.String()[:8])
}

// OrderPlacedTemplate notifies the customer that the order was accepted.
func OrderPlacedTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeOrderPlaced,
		Title:       "Order placed",
		Message:     fmt.Sprintf("We received your order %s and will confirm it shortly.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}

// OrderConfirmedTemplate notifies the customer that the pharmacy confirmed
// the order.
func OrderConfirmedTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeOrderConfirmed,
		Title:       "Order confirmed",
		Message:     fmt.Sprintf("Your order %s has been confirmed and is being processed.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}

// OrderReadyTemplate notifies the customer that the order awaits a rider.
func OrderReadyTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeOrderReady,
		Title:       "Order ready",
		Message:     fmt.Sprintf("Your order %s is packed and waiting for a rider.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}

// RiderAssignedTemplate notifies the customer that a rider picked up the
// order. riderName may be empty when the rider's profile is unavailable.
func RiderAssignedTemplate(customerID, orderID kernel.UUID, riderName string) TemplateResult {
	message := fmt.Sprintf("A rider has been assigned to your order %s.", orderRef(orderID))
	if riderName != "" {
		message = fmt.Sprintf("%s has been assigned to your order %s.", riderName, orderRef(orderID))
	}
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeRiderAssigned,
		Title:       "Rider assigned",
		Message:     message,
		OrderID:     &orderID,
	}
}

// OutForDeliveryTemplate notifies the customer that the order left the
// pharmacy.
func OutForDeliveryTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeOutForDelivery,
		Title:       "Out for delivery",
		Message:     fmt.Sprintf("Your order %s is on its way.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}

// DeliveredTemplate notifies the customer that the order arrived.
func DeliveredTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeDelivered,
		Title:       "Order delivered",
		Message:     fmt.Sprintf("Your order %s has been delivered. Thank you for ordering with us.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}

// OrderCancelledTemplate notifies the customer that the order was rejected.
func OrderCancelledTemplate(customerID, orderID kernel.UUID) TemplateResult {
	return TemplateResult{
		RecipientID: customerID,
		Type:        TypeOrderCancelled,
		Title:       "Order cancelled",
		Message:     fmt.Sprintf("Your order %s has been cancelled. Contact support if this is unexpected.", orderRef(orderID)),
		OrderID:     &orderID,
	}
}
