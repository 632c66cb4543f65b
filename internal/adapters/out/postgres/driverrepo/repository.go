package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var _ ports.DriverRepository = (*GormDriverRepository)(nil)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add inserts a driver under the identifier the engine assigned. A zero ID is rejected.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) (*driver.Driver, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	if err := aggregate.ID().Validate(); err != nil {
		return nil, err
	}

	added := aggregate.Clone()

	dto := fromDomain(added)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return added, nil
}

// Update saves an existing driver.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID())
	}

	return nil
}

func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.ID) error {
	return r.db.WithContext(ctx).Delete(&DriverDTO{}, "id = ?", int64(id)).Error
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every driver ordered by identifier.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
