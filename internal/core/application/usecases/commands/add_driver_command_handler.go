package commands

import (
	"context"

	"freight/internal/core/domain/model/driver"
)

type AddDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewAddDriverCommandHandler(uowFactory DriverUoWFactory) AddDriverCommandHandler {
	return AddDriverCommandHandler{uowFactory: uowFactory}
}

// Handle stores the driver and returns it with its assigned identifier.
func (h AddDriverCommandHandler) Handle(ctx context.Context, cmd AddDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.FullName(), cmd.License())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	added, err := uow.DriverRepository().Add(ctx, d)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return added, nil
}
