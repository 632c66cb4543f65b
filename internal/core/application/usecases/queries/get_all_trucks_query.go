package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetAllTrucksQueryIsNotConstructed = errors.New(
	"GetAllTrucksQuery must be created via NewGetAllTrucksQuery constructor",
)

// GetAllTrucksQuery retrieves the whole fleet regardless of status.
type GetAllTrucksQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllTrucksQuery() GetAllTrucksQuery {
	return GetAllTrucksQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrucksQueryIsNotConstructed)
}
