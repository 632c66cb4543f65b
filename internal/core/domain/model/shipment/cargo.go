package shipment

import (
	"errors"
	"strings"

	"freight/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when using a zero-value Cargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Cargo describes the goods carried by exactly one shipment. It is immutable.
type Cargo struct {
	description  string
	weight       float64
	refrigerated bool
	guard        guard.ConstructorGuard
}

// NewCargo validates the weight in tons; the description is free text and may be empty.
func NewCargo(description string, weight float64, refrigerated bool) (Cargo, error) {
	if err := guard.Positive("weight is invalid", weight); err != nil {
		return Cargo{}, err
	}
	return Cargo{
		description:  strings.TrimSpace(description),
		weight:       weight,
		refrigerated: refrigerated,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

func (c Cargo) Description() string {
	return c.description
}

// Weight returns the cargo weight in tons.
func (c Cargo) Weight() float64 {
	return c.weight
}

func (c Cargo) Refrigerated() bool {
	return c.refrigerated
}

func (c Cargo) IsEqual(other Cargo) bool {
	return c.description == other.description &&
		c.weight == other.weight &&
		c.refrigerated == other.refrigerated
}
