package queries

import (
	"context"
	"slices"

	"freight/internal/core/domain/model/shipment"
)

// GetShipmentsByPeriodQueryHandler returns the shipments planned inside a date
// window ordered by planned date. Shipments planned at the same instant keep
// their store order.
type GetShipmentsByPeriodQueryHandler struct {
	shipments ShipmentReader
}

func NewGetShipmentsByPeriodQueryHandler(shipments ShipmentReader) GetShipmentsByPeriodQueryHandler {
	return GetShipmentsByPeriodQueryHandler{shipments: shipments}
}

func (h GetShipmentsByPeriodQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByPeriodQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.shipments.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]*shipment.Shipment, 0, len(all))
	for _, s := range all {
		if s.PlannedDay().Between(query.From(), query.To()) {
			selected = append(selected, s)
		}
	}

	slices.SortStableFunc(selected, func(a, b *shipment.Shipment) int {
		return a.PlannedDate().Compare(b.PlannedDate())
	})

	return mapAll(selected, newShipmentResponse), nil
}
