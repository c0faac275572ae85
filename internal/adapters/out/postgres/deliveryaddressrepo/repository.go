package deliveryaddressrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryAddressRepository implements ports.DeliveryAddressRepository.
type GormDeliveryAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryAddressRepository {
	return &GormDeliveryAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryAddressRepository) Add(ctx context.Context, address *delivery.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := fromDomain(address)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(address.ID(), address)
	return nil
}

func (r *GormDeliveryAddressRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAddress", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
