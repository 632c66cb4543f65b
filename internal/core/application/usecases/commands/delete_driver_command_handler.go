package commands

import (
	"context"
)

// DeleteDriverCommandHandler deletes a driver. Deleting an unknown driver succeeds.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	if err := uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
