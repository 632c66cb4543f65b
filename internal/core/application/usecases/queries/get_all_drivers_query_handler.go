package queries

import (
	"context"
)

type GetAllDriversQueryHandler struct {
	drivers DriverReader
}

func NewGetAllDriversQueryHandler(drivers DriverReader) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{drivers: drivers}
}

// Handle lists drivers in identifier order.
func (h GetAllDriversQueryHandler) Handle(ctx context.Context, query GetAllDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.drivers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapAll(all, newDriverResponse), nil
}
