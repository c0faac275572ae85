package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// DefaultAddressLimit caps the address book page when no limit is given.
const DefaultAddressLimit = 50

var ErrListDeliveryAddressesQueryIsNotConstructed = errors.New(
	"ListDeliveryAddressesQuery must be created via NewListDeliveryAddressesQuery constructor",
)

// ListDeliveryAddressesQuery reads the address book, newest first.
//
// Example:
//
//	query, _ := NewListDeliveryAddressesQuery(20)
//	addresses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load address book: %w", err)
//	}
type ListDeliveryAddressesQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewListDeliveryAddressesQuery uses DefaultAddressLimit when limit is zero.
func NewListDeliveryAddressesQuery(limit int) (ListDeliveryAddressesQuery, error) {
	if limit == 0 {
		limit = DefaultAddressLimit
	}
	if limit < 0 || limit > 500 {
		return ListDeliveryAddressesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 500)
	}
	return ListDeliveryAddressesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveryAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryAddressesQueryIsNotConstructed)
}

func (q ListDeliveryAddressesQuery) Limit() int { return q.limit }

// ListDeliveryAddressesQueryResponse is one address-book entry.
type ListDeliveryAddressesQueryResponse struct {
	ID        kernel.UUID
	Info      delivery.Info
	CreatedAt time.Time
}
