package commands

import (
	"context"
)

// CancelShipmentCommandHandler cancels a Planned shipment. Shipments that already
// departed, arrived or were cancelled fail with errs.ErrInvalidState. Resources are
// never reserved while Planned, so nothing has to be released.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{uowFactory: uowFactory}
}

func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	repo := uow.ShipmentRepository()

	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
