package delivery

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is an address-book entry saved from the AddAddress variant.
type Address struct {
	id        kernel.UUID
	info      Info
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewAddress stores info as a reusable address. The payment type is not part
// of an address and is dropped.
func NewAddress(id kernel.UUID, info Info, createdAt time.Time) (*Address, error) {
	info.Type = ""
	return RestoreAddress(id, info, createdAt)
}

// RestoreAddress rebuilds an Address from storage.
func RestoreAddress(id kernel.UUID, info Info, createdAt time.Time) (*Address, error) {
	a := &Address{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		requireNonEmpty("receiver", info.Receiver),
		requireNonEmpty("phoneNumber", info.PhoneNumber),
		requireNonEmpty("province", info.Province),
		requireNonEmpty("district", info.District),
		requireNonEmpty("ward", info.Ward),
		requireNonEmpty("address", info.Address),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	a.id = id
	a.info = info
	a.createdAt = createdAt.UTC()
	return a, nil
}

func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID      { return a.id }
func (a *Address) Info() Info           { return a.info }
func (a *Address) CreatedAt() time.Time { return a.createdAt }

func requireNonEmpty(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
