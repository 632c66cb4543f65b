// Package driverrepo maps drivers to the drivers table.
package driverrepo

import (
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	FullName  string `gorm:"type:varchar(255);not null"`
	License   string `gorm:"type:varchar(64);not null"`
	Available bool   `gorm:"not null;index"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        int64(d.ID()),
		FullName:  d.FullName(),
		License:   d.License(),
		Available: d.IsAvailable(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(kernel.ID(dto.ID), dto.FullName, dto.License, dto.Available)
}
