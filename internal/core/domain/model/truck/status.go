package truck

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the operational state of a truck.
//
// State transitions driven by shipments:
//
//	Available ──(shipment start)──> OnRoute ──(shipment complete)──> Available
//
// An operator may override the status to any valid value at any time,
// which is how trucks enter and leave Maintenance.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota

	// Available trucks can be assigned to planned shipments and started.
	Available

	// OnRoute trucks are locked by an in-transit shipment.
	OnRoute

	// Maintenance trucks are out of service until an operator makes them Available again.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		OnRoute:     "OnRoute",
		Maintenance: "Maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "Available",
		OnRoute:     "OnRoute",
		Maintenance: "Maintenance",
	}
}

// ParseStatus converts a status name (case-insensitive) back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid truck status", s))
}

// Validate checks that s is one of Available, OnRoute or Maintenance.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Reserve transitions Available to OnRoute.
func (s Status) Reserve() (Status, error) {
	if s != Available {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to go on route", s.String()),
		)
	}
	return OnRoute, nil
}

// Release always yields Available: completing a shipment frees the truck whatever
// an operator set it to meanwhile.
func (s Status) Release() Status {
	return Available
}
