package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the external reference printed on shipment paperwork.
// It wraps a random UUID so numbers stay unique across stores and restores,
// unlike the store-local integer ID.
type OrderNumber struct {
	id uuid.UUID
}

// NewOrderNumber generates a new random order number.
func NewOrderNumber() OrderNumber {
	return OrderNumber{id: uuid.New()}
}

// OrderNumberFromString parses the textual form produced by String.
func OrderNumberFromString(s string) (OrderNumber, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number is invalid", fmt.Errorf("%q: %w", s, err))
	}
	n := OrderNumber{id: id}
	if err = n.Validate(); err != nil {
		return OrderNumber{}, err
	}
	return n, nil
}

func (n OrderNumber) String() string {
	return n.id.String()
}

// UUID returns the underlying value for storage adapters.
func (n OrderNumber) UUID() uuid.UUID {
	return n.id
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.id == other.id
}

// Validate rejects the zero value.
func (n OrderNumber) Validate() error {
	if n.id == uuid.Nil {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
