package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every driver, available or not.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}
