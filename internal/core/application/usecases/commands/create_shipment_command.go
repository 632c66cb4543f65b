package commands

import (
	"errors"
	"strings"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrPlannedDateIsRequired = errs.NewValueIsRequiredError("planned date")
)

// CreateShipmentCommand represents a request to plan a new shipment.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Steel coils", 8.5, false, 320, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s costs %s", created.ID(), created.Cost())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	description  string
	weight       float64
	refrigerated bool
	distance     float64
	plannedDate  time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates that weight (tons) and distance (km) are positive
// and that a planned date is given. The description is optional.
func NewCreateShipmentCommand(
	description string,
	weight float64,
	refrigerated bool,
	distance float64,
	plannedDate time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		description:  strings.TrimSpace(description),
		refrigerated: refrigerated,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWeight(weight),
		cmd.setDistance(distance),
		cmd.setPlannedDate(plannedDate),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Description() string {
	return c.description
}

// Weight returns the cargo weight in tons.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

func (c CreateShipmentCommand) Refrigerated() bool {
	return c.refrigerated
}

// Distance returns the trip length in km.
func (c CreateShipmentCommand) Distance() float64 {
	return c.distance
}

func (c CreateShipmentCommand) PlannedDate() time.Time {
	return c.plannedDate
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if err := guard.Positive("weight is invalid", weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDistance(distance float64) error {
	if err := guard.Positive("distance is invalid", distance); err != nil {
		return err
	}
	c.distance = distance
	return nil
}

func (c *CreateShipmentCommand) setPlannedDate(plannedDate time.Time) error {
	if plannedDate.IsZero() {
		return ErrPlannedDateIsRequired
	}
	c.plannedDate = plannedDate
	return nil
}
