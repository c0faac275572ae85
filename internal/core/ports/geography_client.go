// Package ports defines the contracts between the storefront core and the
// outside world: the geography service, the form session store and the
// address book.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/geography"
)

// GeographyClient reads the administrative hierarchy from the external
// geography service.
//
// Implementations make a single attempt per call. Transport failures are
// reported as *errs.NetworkError. A parent the service does not know yields an
// empty list, not an error. Results are unordered.
type GeographyClient interface {
	FetchProvinces(ctx context.Context) ([]geography.Province, error)
	FetchDistricts(ctx context.Context, provinceCode geography.Code) ([]geography.District, error)
	FetchWards(ctx context.Context, districtCode geography.Code) ([]geography.Ward, error)
}
