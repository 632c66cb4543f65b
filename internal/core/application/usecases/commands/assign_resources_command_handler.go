package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// AssignResourcesCommandHandler assigns a truck and a driver to a planned shipment.
// Only the shipment is written; the truck and driver are reserved later, on start.
//
// Failures, in the order they are checked:
//   - errs.ErrObjectNotFound: shipment, truck or driver does not exist
//   - errs.ErrInvalidState: shipment is not Planned
//   - errs.ErrResourceUnavailable: truck is not Available or driver is not available
//   - errs.ErrCapacityExceeded: cargo is heavier than the truck capacity
type AssignResourcesCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ResourceDispatcher
}

func NewAssignResourcesCommandHandler(uowFactory UoWFactory) AssignResourcesCommandHandler {
	return AssignResourcesCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewResourceDispatcher(),
	}
}

func (h AssignResourcesCommandHandler) Handle(ctx context.Context, cmd AssignResourcesCommand) error {
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

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	t, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(s, t, d); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
