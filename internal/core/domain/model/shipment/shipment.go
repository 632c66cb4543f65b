package shipment

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when using a zero-value Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrPlannedDateIsRequired is returned when a shipment has no planned date.
	ErrPlannedDateIsRequired = errs.NewValueIsRequiredError("planned date")
)

// Shipment is the aggregate root of one freight transport job.
//
// Shipment follows these invariants:
//   - Distance in km must be positive
//   - Cost is fixed at creation and never recalculated
//   - Truck and driver references are both present or both absent
//   - InTransit and Delivered shipments always reference a truck and a driver
//   - Status transitions follow Planned -> InTransit -> Delivered, or Planned -> Cancelled
//
// A Shipment only tracks references to its truck and driver. Reserving and releasing
// the resources themselves is coordinated by services.ResourceDispatcher.
type Shipment struct {
	// id is assigned by the store on insert (zero until then)
	id kernel.ID

	// orderNumber is the external reference, generated on creation
	orderNumber kernel.OrderNumber

	cargo Cargo

	// truckID and driverID are nil until resources are assigned
	truckID  *kernel.ID
	driverID *kernel.ID

	// distance is the trip length in km
	distance float64

	plannedDate time.Time

	// departureTime and arrivalTime are set by Start and Complete
	departureTime *time.Time
	arrivalTime   *time.Time

	status Status

	cost kernel.Money

	guard guard.ConstructorGuard
}

// NewShipment creates a Planned shipment with no resources assigned.
//
// Parameters:
//   - cargo: the goods to carry (created via NewCargo)
//   - distance: trip length in km (must be positive)
//   - plannedDate: the day the shipment is planned for; time-of-day is kept but ignored by date queries
//   - cost: the transport cost computed by services.CostCalculator
//
// Example:
//
//	cargo, _ := shipment.NewCargo("Steel coils", 8.5, false)
//	cost := services.NewCostCalculator().Calculate(320, cargo.Weight())
//	s, err := shipment.NewShipment(cargo, 320, time.Now(), cost)
func NewShipment(cargo Cargo, distance float64, plannedDate time.Time, cost kernel.Money) (*Shipment, error) {
	s := &Shipment{
		orderNumber: kernel.NewOrderNumber(),
		status:      Planned,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCargo(cargo),
		s.setDistance(distance),
		s.setPlannedDate(plannedDate),
		s.setCost(cost),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from durable storage.
//
// Besides the field rules of NewShipment it checks that truckID and driverID are
// both set or both nil, and that the status is consistent with the assignment.
func RestoreShipment(
	id kernel.ID,
	orderNumber kernel.OrderNumber,
	cargo Cargo,
	truckID *kernel.ID,
	driverID *kernel.ID,
	distance float64,
	plannedDate time.Time,
	departureTime *time.Time,
	arrivalTime *time.Time,
	status Status,
	cost kernel.Money,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderNumber(orderNumber),
		s.setCargo(cargo),
		s.setDistance(distance),
		s.setPlannedDate(plannedDate),
		s.setCost(cost),
		s.setStatus(status),
		s.setAssignment(truckID, driverID),
	); err != nil {
		return nil, err
	}

	if err := s.status.ValidateCanHaveAssignment(s.IsAssigned()); err != nil {
		return nil, err
	}

	s.departureTime = copyTime(departureTime)
	s.arrivalTime = copyTime(arrivalTime)

	return s, nil
}

// Validate ensures the shipment was created through NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id == other.id
}

func (s *Shipment) ID() kernel.ID {
	return s.id
}

func (s *Shipment) OrderNumber() kernel.OrderNumber {
	return s.orderNumber
}

func (s *Shipment) Cargo() Cargo {
	return s.cargo
}

// TruckID returns the assigned truck, or nil.
func (s *Shipment) TruckID() *kernel.ID {
	return copyID(s.truckID)
}

// DriverID returns the assigned driver, or nil.
func (s *Shipment) DriverID() *kernel.ID {
	return copyID(s.driverID)
}

// IsAssigned reports whether a truck and a driver are assigned.
func (s *Shipment) IsAssigned() bool {
	return s.truckID != nil && s.driverID != nil
}

// Distance returns the trip length in km.
func (s *Shipment) Distance() float64 {
	return s.distance
}

func (s *Shipment) PlannedDate() time.Time {
	return s.plannedDate
}

// PlannedDay returns the planned date without its time-of-day.
func (s *Shipment) PlannedDay() kernel.Date {
	return kernel.DateOf(s.plannedDate)
}

// DepartureTime returns when the shipment started, or nil.
func (s *Shipment) DepartureTime() *time.Time {
	return copyTime(s.departureTime)
}

// ArrivalTime returns when the shipment was delivered, or nil.
func (s *Shipment) ArrivalTime() *time.Time {
	return copyTime(s.arrivalTime)
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Cost() kernel.Money {
	return s.cost
}

// AssignID sets the store identifier once.
func (s *Shipment) AssignID(id kernel.ID) error {
	if !s.id.IsZero() {
		return errs.NewInvalidStateErrorWithCause("id is already assigned", fmt.Errorf("shipment already has id %s", s.id))
	}
	return s.setID(id)
}

// Assign binds a truck and a driver to a Planned shipment, overwriting any
// previous assignment. The resources are not reserved here.
func (s *Shipment) Assign(truckID, driverID kernel.ID) error {
	if err := s.status.ValidateAssign(); err != nil {
		return err
	}
	if err := errors.Join(truckID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	s.truckID = &truckID
	s.driverID = &driverID
	return nil
}

// ValidateStart reports why the shipment cannot start, without changing it.
// It returns an InvalidStateError unless Planned, then a MissingAssignmentError
// when no truck and driver are assigned.
func (s *Shipment) ValidateStart() error {
	if _, err := s.status.Start(); err != nil {
		return err
	}
	if !s.IsAssigned() {
		return errs.NewMissingAssignmentError("shipment", s.id)
	}
	return nil
}

// Start records the departure and moves the shipment InTransit.
func (s *Shipment) Start(at time.Time) error {
	if err := s.ValidateStart(); err != nil {
		return err
	}

	s.status = InTransit
	s.departureTime = &at
	return nil
}

// Complete records the arrival and moves the shipment to Delivered.
func (s *Shipment) Complete(at time.Time) error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.arrivalTime = &at
	return nil
}

// Cancel withdraws a Planned shipment. Assigned references are kept for the record.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Clone returns a deep copy.
func (s *Shipment) Clone() *Shipment {
	if s == nil {
		return nil
	}
	c := *s
	c.truckID = copyID(s.truckID)
	c.driverID = copyID(s.driverID)
	c.departureTime = copyTime(s.departureTime)
	c.arrivalTime = copyTime(s.arrivalTime)
	return &c
}

func (s *Shipment) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	s.orderNumber = orderNumber
	return nil
}

func (s *Shipment) setCargo(cargo Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	s.cargo = cargo
	return nil
}

func (s *Shipment) setDistance(distance float64) error {
	if err := guard.Positive("distance is invalid", distance); err != nil {
		return err
	}
	s.distance = distance
	return nil
}

func (s *Shipment) setPlannedDate(plannedDate time.Time) error {
	if plannedDate.IsZero() {
		return ErrPlannedDateIsRequired
	}
	s.plannedDate = plannedDate
	return nil
}

func (s *Shipment) setCost(cost kernel.Money) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%s is less than 0", cost))
	}
	s.cost = cost
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setAssignment(truckID, driverID *kernel.ID) error {
	if (truckID == nil) != (driverID == nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignment is invalid",
			errors.New("truck and driver must be both present or both absent"),
		)
	}
	if truckID == nil {
		return nil
	}
	if err := errors.Join(truckID.Validate(), driverID.Validate()); err != nil {
		return err
	}
	s.truckID = copyID(truckID)
	s.driverID = copyID(driverID)
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
