// Package deliveryaddressrepo persists address-book entries in PostgreSQL and
// maps them to and from delivery.Address.
package deliveryaddressrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryAddressDTO is the row layout of the delivery_addresses table.
// Area names are stored as shown to the buyer, not as codes.
type DeliveryAddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Receiver    string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null"`
	Province    string    `gorm:"type:varchar(255);not null"`
	District    string    `gorm:"type:varchar(255);not null"`
	Ward        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:varchar(255);not null"`
	Notice      string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (DeliveryAddressDTO) TableName() string {
	return "delivery_addresses"
}

func fromDomain(a *delivery.Address) DeliveryAddressDTO {
	info := a.Info()
	return DeliveryAddressDTO{
		ID:          a.ID().Bytes(),
		Receiver:    info.Receiver,
		PhoneNumber: info.PhoneNumber,
		Province:    info.Province,
		District:    info.District,
		Ward:        info.Ward,
		Address:     info.Address,
		Notice:      info.Notice,
		CreatedAt:   a.CreatedAt(),
	}
}

func toDomain(dto DeliveryAddressDTO) (*delivery.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAddress(id, delivery.Info{
		Receiver:    dto.Receiver,
		PhoneNumber: dto.PhoneNumber,
		Province:    dto.Province,
		District:    dto.District,
		Ward:        dto.Ward,
		Address:     dto.Address,
		Notice:      dto.Notice,
	}, dto.CreatedAt)
}
