// Package order provides domain entities and business logic for the order
// fulfillment lifecycle. It implements the Order aggregate root with its
// state machine, rider assignment, pricing, and the Delivery satellite record.
//
// The package includes:
//   - Order: The aggregate root owning identity, line items, totals, and lifecycle
//   - Status: A state machine that enforces valid fulfillment transitions
//   - Assignment: An explicit Unassigned | AssignedTo(riderID) tagged state
//   - LineItem: A value object for a purchased product position
//   - Delivery: The satellite record mirroring physical fulfillment status
//
// Key business rules:
//   - total = subtotal + tax + shipping, fixed at creation and never recomputed
//   - An order has a rider bound if and only if its status is rider_received,
//     out_for_delivery, pending_confirmation, or delivered
//   - Transitions follow pending -> confirmed -> preparing -> ready ->
//     rider_received -> out_for_delivery -> pending_confirmation -> delivered,
//     with cancellation reachable from any pre-ready state via admin rejection
//   - The Delivery record is created atomically with its owning Order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
