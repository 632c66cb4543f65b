package commands

import (
	"context"
)

type ChangeDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewChangeDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) ChangeDriverAvailabilityCommandHandler {
	return ChangeDriverAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h ChangeDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd ChangeDriverAvailabilityCommand) error {
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

	repo := uow.DriverRepository()

	d, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	d.SetAvailable(cmd.Available())

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
