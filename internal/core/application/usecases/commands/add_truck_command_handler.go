package commands

import (
	"context"

	"freight/internal/core/domain/model/truck"
)

type AddTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewAddTruckCommandHandler(uowFactory TruckUoWFactory) AddTruckCommandHandler {
	return AddTruckCommandHandler{uowFactory: uowFactory}
}

// Handle stores the truck and returns it with its assigned identifier.
func (h AddTruckCommandHandler) Handle(ctx context.Context, cmd AddTruckCommand) (*truck.Truck, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := truck.NewTruck(cmd.Registration(), cmd.Capacity(), cmd.FuelConsumption())
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

	added, err := uow.TruckRepository().Add(ctx, t)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return added, nil
}
