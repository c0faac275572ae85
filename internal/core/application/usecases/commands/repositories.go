// Package commands contains the storefront operations that change state:
// opening and closing delivery forms, moving their selection and submitting
// them. Each command is built through its constructor and executed by a
// handler.
package commands

import (
	"context"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/i18n"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryAddressRepoFactory provides the address book within a transaction.
	DeliveryAddressRepoFactory interface {
		DeliveryAddressRepository() ports.DeliveryAddressRepository
	}

	// DeliveryAddressUoW manages transactions for address-book writes.
	DeliveryAddressUoW interface {
		TxManager
		DeliveryAddressRepoFactory
	}

	// DeliveryAddressUoWFactory creates address-book unit of work instances.
	DeliveryAddressUoWFactory interface {
		Create() DeliveryAddressUoW
	}

	// LocationFetcher is the sorted view of the geography service used while a
	// form is being filled in.
	LocationFetcher interface {
		FetchProvinces(ctx context.Context, locale i18n.Locale) ([]geography.Province, error)
		FetchDistricts(ctx context.Context, provinceCode geography.Code, locale i18n.Locale) ([]geography.District, error)
		FetchWards(ctx context.Context, districtCode geography.Code, locale i18n.Locale) ([]geography.Ward, error)
	}
)
