package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var _ ports.ShipmentRepository = (*GormShipmentRepository)(nil)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add inserts a shipment under the identifier the engine assigned. A zero ID is rejected.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (*shipment.Shipment, error) {
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

// Update saves an existing shipment.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID())
	}

	return nil
}

func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	return r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", int64(id)).Error
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every shipment ordered by identifier.
func (r *GormShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
