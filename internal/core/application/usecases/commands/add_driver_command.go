package commands

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAddDriverCommandIsNotConstructed = errors.New(
		"AddDriverCommand must be created via NewAddDriverCommand constructor",
	)
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	ErrLicenseIsRequired  = errs.NewValueIsRequiredError("license")
)

// AddDriverCommand registers a new driver. New drivers are available.
type AddDriverCommand struct {
	fullName string
	license  string

	guard guard.ConstructorGuard
}

func NewAddDriverCommand(fullName, license string) (AddDriverCommand, error) {
	fullName = strings.TrimSpace(fullName)
	license = strings.TrimSpace(license)

	var nameErr, licenseErr error
	if fullName == "" {
		nameErr = ErrFullNameIsRequired
	}
	if license == "" {
		licenseErr = ErrLicenseIsRequired
	}
	if err := errors.Join(nameErr, licenseErr); err != nil {
		return AddDriverCommand{}, err
	}

	return AddDriverCommand{
		fullName: fullName,
		license:  license,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddDriverCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverCommandIsNotConstructed)
}

func (c AddDriverCommand) FullName() string {
	return c.fullName
}

func (c AddDriverCommand) License() string {
	return c.license
}
