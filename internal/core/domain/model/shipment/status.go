package shipment

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Planned ──(start)──> InTransit ──(complete)──> Delivered
//	   │
//	   └──(cancel)──> Cancelled
//
// Resource assignment happens while Planned and does not change the status.
// Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planned is the initial status. Trucks and drivers may be assigned and reassigned.
	Planned

	// InTransit means the shipment departed and holds its truck and driver.
	InTransit

	// Delivered means the shipment arrived and released its resources.
	Delivered

	// Cancelled means the shipment was withdrawn before departure.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planned:   "Planned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "Planned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts a status name (case-insensitive) back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
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

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks that resources may be (re)assigned, which is only while Planned.
func (s Status) ValidateAssign() error {
	if s != Planned {
		return errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign resources", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveAssignment checks consistency between the status and the presence
// of truck and driver references. InTransit and Delivered shipments must carry them;
// Planned and Cancelled shipments may or may not.
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if !assigned && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no truck and driver", s.String()),
		)
	}
	return nil
}

// Start transitions Planned to InTransit.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return InTransit, nil
}

// Complete transitions InTransit to Delivered.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions Planned to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Planned {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
