package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error type in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidState        = errors.New("invalid state")
	ErrResourceUnavailable = errors.New("resource is unavailable")
	ErrCapacityExceeded    = errors.New("capacity is exceeded")
	ErrMissingAssignment   = errors.New("assignment is missing")
)

const causeSuffixFormat = " (cause: %v)"

// IsInvalidArgument reports whether err describes a caller-supplied value outside its domain.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}

// ObjectNotFoundError is returned when a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s"+causeSuffixFormat,
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	return withCause(sanitize(msg), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError is returned when an operation is not legal for the current status of an entity.
type InvalidStateError struct {
	ParamName string
	Cause     error
}

func NewInvalidStateError(paramName string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName}
}

func NewInvalidStateErrorWithCause(paramName string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrInvalidState, e.ParamName), e.Cause)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ResourceUnavailableError is returned when a truck or driver cannot be booked.
type ResourceUnavailableError struct {
	Resource string
	ID       any
	Cause    error
}

func NewResourceUnavailableError(resource string, id any) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource, ID: id}
}

func NewResourceUnavailableErrorWithCause(resource string, id any, cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource, ID: id, Cause: cause}
}

func (e *ResourceUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v", ErrResourceUnavailable, e.Resource, e.ID), e.Cause)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// CapacityExceededError is returned when cargo is heavier than the truck can carry.
type CapacityExceededError struct {
	Weight   float64
	Capacity float64
}

func NewCapacityExceededError(weight, capacity float64) *CapacityExceededError {
	return &CapacityExceededError{Weight: weight, Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: cargo weight %g t exceeds capacity %g t", ErrCapacityExceeded, e.Weight, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// MissingAssignmentError is returned when an operation needs a truck and driver that were never assigned.
type MissingAssignmentError struct {
	ParamName string
	ID        any
}

func NewMissingAssignmentError(paramName string, id any) *MissingAssignmentError {
	return &MissingAssignmentError{ParamName: paramName, ID: id}
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("%s: %s %v has no truck and driver", ErrMissingAssignment, e.ParamName, e.ID)
}

func (e *MissingAssignmentError) Unwrap() error {
	return ErrMissingAssignment
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + fmt.Sprintf(causeSuffixFormat, cause)
}

func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
