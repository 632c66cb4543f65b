package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipmentsByPeriodQueryIsNotConstructed = errors.New(
	"GetShipmentsByPeriodQuery must be created via NewGetShipmentsByPeriodQuery constructor",
)

// GetShipmentsByPeriodQuery selects shipments whose planned calendar date lies
// in [from, to]. Times of day are ignored on both sides. A window with from
// after to is accepted and matches nothing.
//
// Example:
//
//	from, _ := kernel.ParseDate("2025-06-01")
//	to, _ := kernel.ParseDate("2025-06-30")
//	shipments, err := handler.Handle(ctx, NewGetShipmentsByPeriodQuery(from, to))
type GetShipmentsByPeriodQuery struct {
	from  kernel.Date
	to    kernel.Date
	guard guard.ConstructorGuard
}

func NewGetShipmentsByPeriodQuery(from, to kernel.Date) GetShipmentsByPeriodQuery {
	return GetShipmentsByPeriodQuery{from: from, to: to, guard: guard.NewConstructorGuard()}
}

func (q GetShipmentsByPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByPeriodQueryIsNotConstructed)
}

func (q GetShipmentsByPeriodQuery) From() kernel.Date {
	return q.from
}

func (q GetShipmentsByPeriodQuery) To() kernel.Date {
	return q.to
}
