// Package guard provides the constructor guard used by value objects, entities,
// commands and queries to tell a constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be built through their constructor.
// The zero value reports "not constructed"; NewConstructorGuard reports "constructed".
//
// Example:
//
//	type Cargo struct {
//	    weightTons float64
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c Cargo) Validate() error {
//	    return c.guard.Validate(ErrCargoIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
