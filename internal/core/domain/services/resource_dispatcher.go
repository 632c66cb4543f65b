package services

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// ResourceDispatcher is a domain service that applies the rules spanning a shipment
// and the truck and driver it books.
//
// Key responsibilities:
//   - Checking availability and capacity when resources are assigned
//   - Reserving the truck and driver when the shipment starts
//   - Releasing whichever resources still exist when the shipment completes
//
// Every method runs all of its checks before mutating anything, so on error the
// shipment, truck and driver are left exactly as they were.
//
// Example usage:
//
//	dispatcher := services.NewResourceDispatcher()
//	if err := dispatcher.Assign(s, t, d); errors.Is(err, errs.ErrCapacityExceeded) {
//	    // pick a bigger truck
//	}
type ResourceDispatcher struct{}

func NewResourceDispatcher() ResourceDispatcher {
	return ResourceDispatcher{}
}

// Assign binds t and d to a Planned shipment.
//
// Checks, in order:
//   - shipment is Planned (InvalidStateError)
//   - truck is Available (ResourceUnavailableError)
//   - driver is available (ResourceUnavailableError)
//   - cargo weight does not exceed truck capacity (CapacityExceededError)
//
// Neither resource is reserved; reservation is deferred to Start.
func (ResourceDispatcher) Assign(s *shipment.Shipment, t *truck.Truck, d *driver.Driver) error {
	if err := errors.Join(s.Validate(), t.Validate(), d.Validate()); err != nil {
		return err
	}

	if err := s.Status().ValidateAssign(); err != nil {
		return err
	}

	if err := checkAvailable(t, d); err != nil {
		return err
	}

	if !t.CanCarry(s.Cargo().Weight()) {
		return errs.NewCapacityExceededError(s.Cargo().Weight(), t.Capacity())
	}

	return s.Assign(t.ID(), d.ID())
}

// Start reserves the assigned truck and driver and moves the shipment InTransit.
//
// Besides the shipment's own checks (InvalidStateError, MissingAssignmentError), it
// rejects resources that are no longer free with a ResourceUnavailableError. That
// happens when another shipment assigned the same truck or driver started first.
func (ResourceDispatcher) Start(s *shipment.Shipment, t *truck.Truck, d *driver.Driver, at time.Time) error {
	if err := errors.Join(s.Validate(), t.Validate(), d.Validate()); err != nil {
		return err
	}

	if err := s.ValidateStart(); err != nil {
		return err
	}

	if err := checkAssigned(s, t, d); err != nil {
		return err
	}

	if err := checkAvailable(t, d); err != nil {
		return err
	}

	if err := t.Reserve(); err != nil {
		return err
	}
	if err := d.Reserve(); err != nil {
		return err
	}
	return s.Start(at)
}

// Complete moves an InTransit shipment to Delivered and releases its resources.
// t and d may be nil when the truck or driver was deleted meanwhile; they are skipped.
func (ResourceDispatcher) Complete(s *shipment.Shipment, t *truck.Truck, d *driver.Driver, at time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if err := s.Complete(at); err != nil {
		return err
	}

	if t != nil {
		t.Release()
	}
	if d != nil {
		d.Release()
	}
	return nil
}

func checkAvailable(t *truck.Truck, d *driver.Driver) error {
	if !t.IsAvailable() {
		return errs.NewResourceUnavailableErrorWithCause("truck", t.ID(),
			fmt.Errorf("status is %s", t.Status()))
	}
	if !d.IsAvailable() {
		return errs.NewResourceUnavailableErrorWithCause("driver", d.ID(),
			errors.New("driver is not available"))
	}
	return nil
}

func checkAssigned(s *shipment.Shipment, t *truck.Truck, d *driver.Driver) error {
	if !sameID(s.TruckID(), t.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("truck is invalid",
			fmt.Errorf("truck %s is not assigned to shipment %s", t.ID(), s.ID()))
	}
	if !sameID(s.DriverID(), d.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("driver is invalid",
			fmt.Errorf("driver %s is not assigned to shipment %s", d.ID(), s.ID()))
	}
	return nil
}

func sameID(ref *kernel.ID, id kernel.ID) bool {
	return ref != nil && *ref == id
}
