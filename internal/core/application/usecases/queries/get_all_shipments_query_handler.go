package queries

import (
	"context"
)

// GetAllShipmentsQueryHandler lists shipments in identifier order.
type GetAllShipmentsQueryHandler struct {
	shipments ShipmentReader
}

func NewGetAllShipmentsQueryHandler(shipments ShipmentReader) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{shipments: shipments}
}

func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.shipments.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapAll(all, newShipmentResponse), nil
}
