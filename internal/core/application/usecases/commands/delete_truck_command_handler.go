package commands

import (
	"context"
)

// DeleteTruckCommandHandler deletes a truck. Deleting an unknown truck succeeds.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{uowFactory: uowFactory}
}

func (h DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) error {
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

	if err := uow.TruckRepository().Delete(ctx, cmd.TruckID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
