package queries

import (
	"cmp"
	"context"
	"slices"

	"freight/internal/core/domain/model/truck"
)

// GetAvailableTrucksQueryHandler lists trucks ready for a new assignment,
// smallest capacity first so the tightest fit comes on top. Trucks with equal
// capacity keep their store order.
type GetAvailableTrucksQueryHandler struct {
	trucks TruckReader
}

func NewGetAvailableTrucksQueryHandler(trucks TruckReader) GetAvailableTrucksQueryHandler {
	return GetAvailableTrucksQueryHandler{trucks: trucks}
}

func (h GetAvailableTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTrucksQuery,
) ([]TruckResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.trucks.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*truck.Truck, 0, len(all))
	for _, t := range all {
		if t.IsAvailable() && t.CanCarry(query.MinCapacity()) {
			available = append(available, t)
		}
	}

	slices.SortStableFunc(available, func(a, b *truck.Truck) int {
		return cmp.Compare(a.Capacity(), b.Capacity())
	})

	return mapAll(available, newTruckResponse), nil
}
