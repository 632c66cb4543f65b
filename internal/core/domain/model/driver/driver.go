package driver

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrLicenseIsRequired      = errs.NewValueIsRequiredError("license")
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a person who can be booked by one shipment at a time.
type Driver struct {
	id        kernel.ID
	fullName  string
	license   string
	available bool
	guard     guard.ConstructorGuard
}

// NewDriver creates an available driver without an identifier.
func NewDriver(fullName, license string) (*Driver, error) {
	d := &Driver{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setFullName(fullName),
		d.setLicense(license),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from durable storage.
func RestoreDriver(id kernel.ID, fullName, license string, available bool) (*Driver, error) {
	d := &Driver{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setFullName(fullName),
		d.setLicense(license),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id == other.id
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) FullName() string {
	return d.fullName
}

func (d *Driver) License() string {
	return d.license
}

func (d *Driver) IsAvailable() bool {
	return d.available
}

// AssignID sets the store identifier once.
func (d *Driver) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return errs.NewInvalidStateErrorWithCause("id is already assigned", fmt.Errorf("driver already has id %s", d.id))
	}
	return d.setID(id)
}

// Reserve marks the driver busy. An unavailable driver yields a ResourceUnavailableError.
func (d *Driver) Reserve() error {
	if !d.available {
		return errs.NewResourceUnavailableErrorWithCause("driver", d.id, errors.New("driver is not available"))
	}
	d.available = false
	return nil
}

func (d *Driver) Release() {
	d.available = true
}

// SetAvailable is the operator override.
func (d *Driver) SetAvailable(available bool) {
	d.available = available
}

func (d *Driver) Clone() *Driver {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrNameIsRequired
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setLicense(license string) error {
	license = strings.TrimSpace(license)
	if license == "" {
		return ErrLicenseIsRequired
	}
	d.license = license
	return nil
}
