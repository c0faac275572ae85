package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// DeliveryAddressRepository persists address-book entries.
type DeliveryAddressRepository interface {
	// Add persists a new address. The address must be valid.
	Add(ctx context.Context, address *delivery.Address) error

	// Get returns the address or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Address, error)
}
