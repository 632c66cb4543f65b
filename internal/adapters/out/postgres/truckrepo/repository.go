package truckrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var _ ports.TruckRepository = (*GormTruckRepository)(nil)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db *gorm.DB
}

func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Add inserts a truck under the identifier the engine assigned. A zero ID is rejected.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) (*truck.Truck, error) {
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

// Update saves an existing truck.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TruckDTO{}).Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", aggregate.ID())
	}

	return nil
}

func (r *GormTruckRepository) Delete(ctx context.Context, id kernel.ID) error {
	return r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", int64(id)).Error
}

func (r *GormTruckRepository) Get(ctx context.Context, id kernel.ID) (*truck.Truck, error) {
	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every truck ordered by identifier.
func (r *GormTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}
