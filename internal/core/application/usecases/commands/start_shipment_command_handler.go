package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/services"
)

// StartShipmentCommandHandler moves a planned shipment InTransit and reserves its
// truck and driver. This is where resources actually become locked.
//
// Failures, in the order they are checked:
//   - errs.ErrObjectNotFound: shipment does not exist
//   - errs.ErrInvalidState: shipment is not Planned
//   - errs.ErrMissingAssignment: no truck and driver assigned
//   - errs.ErrObjectNotFound: the assigned truck or driver was deleted
//   - errs.ErrResourceUnavailable: another shipment took the truck or driver first
//
// The shipment, truck and driver are written together on success and not at all
// on failure.
type StartShipmentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ResourceDispatcher
	now        Clock
}

func NewStartShipmentCommandHandler(uowFactory UoWFactory, now Clock) StartShipmentCommandHandler {
	if now == nil {
		now = time.Now
	}
	return StartShipmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewResourceDispatcher(),
		now:        now,
	}
}

func (h StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	truckRepo := uow.TruckRepository()
	driverRepo := uow.DriverRepository()

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.ValidateStart(); err != nil {
		return err
	}

	t, err := truckRepo.Get(ctx, *s.TruckID())
	if err != nil {
		return err
	}

	d, err := driverRepo.Get(ctx, *s.DriverID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Start(s, t, d, h.now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
