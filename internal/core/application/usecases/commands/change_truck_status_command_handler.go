package commands

import (
	"context"
)

// ChangeTruckStatusCommandHandler overrides a truck status without consulting
// shipments. The engine accepts the resulting inconsistencies, such as an OnRoute
// truck that no shipment references.
type ChangeTruckStatusCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewChangeTruckStatusCommandHandler(uowFactory TruckUoWFactory) ChangeTruckStatusCommandHandler {
	return ChangeTruckStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeTruckStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTruckStatusCommand) error {
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

	repo := uow.TruckRepository()

	t, err := repo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = t.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
