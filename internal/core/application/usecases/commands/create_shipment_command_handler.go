package commands

import (
	"context"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
)

// CreateShipmentCommandHandler plans a new shipment. The cost is computed once here
// and never recalculated.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	calculator services.CostCalculator
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewCostCalculator(),
	}
}

// Handle creates a Planned shipment with no resources and returns it with its
// store-assigned identifier.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cargo, err := shipment.NewCargo(cmd.Description(), cmd.Weight(), cmd.Refrigerated())
	if err != nil {
		return nil, err
	}

	cost := h.calculator.Calculate(cmd.Distance(), cmd.Weight())

	s, err := shipment.NewShipment(cargo, cmd.Distance(), cmd.PlannedDate(), cost)
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

	created, err := uow.ShipmentRepository().Add(ctx, s)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
