// Package errs provides standardized error types for the freight application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for every failure kind the shipment engine reports:
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError: caller-supplied values
//     outside their domain (see IsInvalidArgument)
//   - ObjectNotFoundError: a referenced shipment, truck or driver does not exist
//   - InvalidStateError: an operation is not legal for the entity's current status
//   - ResourceUnavailableError: a truck or driver is busy or out of service
//   - CapacityExceededError: cargo weight exceeds the truck capacity
//   - MissingAssignmentError: a shipment is started before a truck and driver were assigned
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
package errs
