package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery selects drivers that can take a new shipment.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}
