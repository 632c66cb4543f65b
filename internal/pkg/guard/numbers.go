package guard

import (
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

// Positive checks that v is a finite number greater than zero.
func Positive(paramName string, v float64) error {
	if err := finite(paramName, v); err != nil {
		return err
	}
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%g is not greater than 0", v))
	}
	return nil
}

// NonNegative checks that v is a finite number not less than zero.
func NonNegative(paramName string, v float64) error {
	if err := finite(paramName, v); err != nil {
		return err
	}
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%g is less than 0", v))
	}
	return nil
}

func finite(paramName string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%g is not a finite number", v))
	}
	return nil
}
