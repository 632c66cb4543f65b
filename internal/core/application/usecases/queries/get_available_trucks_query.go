package queries

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrGetAvailableTrucksQueryIsNotConstructed = errors.New(
	"GetAvailableTrucksQuery must be created via NewGetAvailableTrucksQuery constructor",
)

// GetAvailableTrucksQuery selects Available trucks that can carry at least
// minCapacity tons.
type GetAvailableTrucksQuery struct {
	minCapacity float64
	guard       guard.ConstructorGuard
}

// NewGetAvailableTrucksQuery rejects a negative minimum capacity. Zero selects
// every Available truck.
func NewGetAvailableTrucksQuery(minCapacity float64) (GetAvailableTrucksQuery, error) {
	if minCapacity < 0 {
		return GetAvailableTrucksQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"min capacity is invalid",
			fmt.Errorf("%g is less than 0", minCapacity),
		)
	}
	return GetAvailableTrucksQuery{minCapacity: minCapacity, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailableTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTrucksQueryIsNotConstructed)
}

func (q GetAvailableTrucksQuery) MinCapacity() float64 {
	return q.minCapacity
}
