package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// CompleteShipmentCommandHandler delivers an in-transit shipment and releases its
// truck and driver. A truck or driver deleted while the shipment was on the road
// is skipped without error.
type CompleteShipmentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ResourceDispatcher
	now        Clock
}

func NewCompleteShipmentCommandHandler(uowFactory UoWFactory, now Clock) CompleteShipmentCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewResourceDispatcher(),
		now:        now,
	}
}

func (h CompleteShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentCommand) error {
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

	if _, err = s.Status().Complete(); err != nil {
		return err
	}

	t, err := findTruck(ctx, truckRepo, s.TruckID())
	if err != nil {
		return err
	}

	d, err := findDriver(ctx, driverRepo, s.DriverID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Complete(s, t, d, h.now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if t != nil {
		if err = truckRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if d != nil {
		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// findTruck returns nil without error when the truck is gone.
func findTruck(ctx context.Context, repo ports.TruckRepository, id *kernel.ID) (*truck.Truck, error) {
	if id == nil {
		return nil, nil
	}
	t, err := repo.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return t, err
}

// findDriver returns nil without error when the driver is gone.
func findDriver(ctx context.Context, repo ports.DriverRepository, id *kernel.ID) (*driver.Driver, error) {
	if id == nil {
		return nil, nil
	}
	d, err := repo.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return d, err
}
