// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment system.
//
// The package includes:
//   - NotificationDispatcher: a fire-and-forget service that materializes
//     rendered notification templates into persisted notifications
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
