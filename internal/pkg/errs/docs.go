// Package errs provides standardized error types for the pharmacy delivery
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes validation errors for malformed input:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//
// and the fulfillment error taxonomy for the order lifecycle:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ForbiddenError: the actor has no rights over the entity
//   - StateConflictError: a transition precondition does not hold
//   - AlreadyClaimedError: a claim race was lost; the caller may refresh and retry
//   - InsufficientStockError: a stock decrement would go below zero
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets callers distinguish "retry later" outcomes
// (AlreadyClaimed) from "do not retry" outcomes (Forbidden, NotFound) without
// parsing error strings.
package errs
