package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment in any status.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}
