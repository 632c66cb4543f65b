package truck

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrRegistrationIsRequired is returned when a truck has an empty registration label.
	ErrRegistrationIsRequired = errs.NewValueIsRequiredError("registration")
	// ErrTruckIsNotConstructed is returned when using a zero-value Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")
)

// Truck is a vehicle that can be booked by one shipment at a time.
//
// Business rules:
//   - Registration label is required
//   - Capacity in tons must be positive
//   - Fuel consumption (litres per 100 km) is informational and must not be negative
//   - A new truck starts Available
//   - Only an Available truck can go on route
//
// Identifiers are assigned by the store on insert; a freshly constructed truck
// has a zero ID until then.
type Truck struct {
	id              kernel.ID
	registration    string
	capacity        float64
	fuelConsumption float64
	status          Status
	guard           guard.ConstructorGuard
}

// NewTruck creates an Available truck without an identifier.
//
// Example:
//
//	t, err := truck.NewTruck("AA1001-BC", 10, 24)
//	if err != nil {
//	    // invalid registration, capacity or fuel consumption
//	}
func NewTruck(registration string, capacity, fuelConsumption float64) (*Truck, error) {
	t := &Truck{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setRegistration(registration),
		t.setCapacity(capacity),
		t.setFuelConsumption(fuelConsumption),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck rebuilds a truck from durable storage, keeping its identifier and status.
func RestoreTruck(
	id kernel.ID,
	registration string,
	capacity float64,
	fuelConsumption float64,
	status Status,
) (*Truck, error) {
	t := &Truck{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setRegistration(registration),
		t.setCapacity(capacity),
		t.setFuelConsumption(fuelConsumption),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the truck was created through NewTruck or RestoreTruck.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// IsEqual compares trucks by identifier.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id == other.id
}

func (t *Truck) ID() kernel.ID {
	return t.id
}

func (t *Truck) Registration() string {
	return t.registration
}

// Capacity returns the maximum cargo weight in tons.
func (t *Truck) Capacity() float64 {
	return t.capacity
}

// FuelConsumption returns litres per 100 km.
func (t *Truck) FuelConsumption() float64 {
	return t.fuelConsumption
}

func (t *Truck) Status() Status {
	return t.status
}

// IsAvailable reports whether the truck can be booked right now.
func (t *Truck) IsAvailable() bool {
	return t.status == Available
}

// CanCarry reports whether cargo of the given weight fits into the truck.
func (t *Truck) CanCarry(weight float64) bool {
	return weight <= t.capacity
}

// AssignID sets the store identifier. It succeeds only once, while the ID is still zero.
func (t *Truck) AssignID(id kernel.ID) error {
	if !t.id.IsZero() {
		return errs.NewInvalidStateErrorWithCause("id is already assigned", fmt.Errorf("truck already has id %s", t.id))
	}
	return t.setID(id)
}

// Reserve puts an Available truck on route.
// Any other status yields a ResourceUnavailableError.
func (t *Truck) Reserve() error {
	newStatus, err := t.status.Reserve()
	if err != nil {
		return errs.NewResourceUnavailableErrorWithCause("truck", t.id, err)
	}
	t.status = newStatus
	return nil
}

// Release makes the truck Available again after its shipment is delivered.
func (t *Truck) Release() {
	t.status = t.status.Release()
}

// ChangeStatus is the operator override. It accepts any valid status and does not
// consult shipments, so a truck may end up OnRoute with no shipment referencing it.
func (t *Truck) ChangeStatus(status Status) error {
	return t.setStatus(status)
}

// Clone returns an independent copy.
func (t *Truck) Clone() *Truck {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *Truck) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setRegistration(registration string) error {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return ErrRegistrationIsRequired
	}
	t.registration = registration
	return nil
}

func (t *Truck) setCapacity(capacity float64) error {
	if err := guard.Positive("capacity is invalid", capacity); err != nil {
		return err
	}
	t.capacity = capacity
	return nil
}

func (t *Truck) setFuelConsumption(fuelConsumption float64) error {
	if err := guard.NonNegative("fuel consumption is invalid", fuelConsumption); err != nil {
		return err
	}
	t.fuelConsumption = fuelConsumption
	return nil
}

func (t *Truck) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
