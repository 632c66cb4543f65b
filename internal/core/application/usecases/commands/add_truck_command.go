package commands

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAddTruckCommandIsNotConstructed = errors.New(
		"AddTruckCommand must be created via NewAddTruckCommand constructor",
	)
	ErrRegistrationIsRequired = errs.NewValueIsRequiredError("registration")
)

// AddTruckCommand registers a new truck in the fleet. New trucks are Available.
type AddTruckCommand struct { //nolint:recvcheck //using for validation
	registration    string
	capacity        float64
	fuelConsumption float64

	guard guard.ConstructorGuard
}

func NewAddTruckCommand(registration string, capacity, fuelConsumption float64) (AddTruckCommand, error) {
	cmd := AddTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRegistration(registration),
		cmd.setCapacity(capacity),
		cmd.setFuelConsumption(fuelConsumption),
	); err != nil {
		return AddTruckCommand{}, err
	}

	return cmd, nil
}

func (c AddTruckCommand) Validate() error {
	return c.guard.Validate(ErrAddTruckCommandIsNotConstructed)
}

func (c AddTruckCommand) Registration() string {
	return c.registration
}

func (c AddTruckCommand) Capacity() float64 {
	return c.capacity
}

func (c AddTruckCommand) FuelConsumption() float64 {
	return c.fuelConsumption
}

func (c *AddTruckCommand) setRegistration(registration string) error {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return ErrRegistrationIsRequired
	}
	c.registration = registration
	return nil
}

func (c *AddTruckCommand) setCapacity(capacity float64) error {
	if err := guard.Positive("capacity is invalid", capacity); err != nil {
		return err
	}
	c.capacity = capacity
	return nil
}

func (c *AddTruckCommand) setFuelConsumption(fuelConsumption float64) error {
	if err := guard.NonNegative("fuel consumption is invalid", fuelConsumption); err != nil {
		return err
	}
	c.fuelConsumption = fuelConsumption
	return nil
}
