package queries

import (
	"context"
)

// GetAllTrucksQueryHandler lists trucks in identifier order.
type GetAllTrucksQueryHandler struct {
	trucks TruckReader
}

func NewGetAllTrucksQueryHandler(trucks TruckReader) GetAllTrucksQueryHandler {
	return GetAllTrucksQueryHandler{trucks: trucks}
}

func (h GetAllTrucksQueryHandler) Handle(ctx context.Context, query GetAllTrucksQuery) ([]TruckResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.trucks.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapAll(all, newTruckResponse), nil
}
