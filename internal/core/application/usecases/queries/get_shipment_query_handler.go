package queries

import (
	"context"
)

// GetShipmentQueryHandler returns a single shipment or errs.ErrObjectNotFound.
type GetShipmentQueryHandler struct {
	shipments ShipmentReader
}

func NewGetShipmentQueryHandler(shipments ShipmentReader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{shipments: shipments}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	s, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return ShipmentResponse{}, err
	}

	return newShipmentResponse(s), nil
}
