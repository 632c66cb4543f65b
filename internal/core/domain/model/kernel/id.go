package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"freight/internal/pkg/errs"
)

// ID identifies a truck, driver or shipment inside its own store.
// The zero value means "not assigned yet"; stores hand out positive identifiers.
type ID int64

// ParseID parses the decimal representation of an identifier.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id is invalid", err)
	}
	return ID(v), nil
}

// IsZero reports whether the identifier has not been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

// Validate checks that the identifier was assigned by a store.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id, for optional references.
func (id ID) Ptr() *ID {
	return &id
}
