package services

import (
	"context"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/i18n"
)

// LocationFetcher loads one level of the hierarchy at a time and returns it
// sorted by name with the locale's collation.
//
// Errors from the client are returned unchanged, so a transport failure stays
// a *errs.NetworkError. No retries are made.
//
// Example:
//
//	fetcher := NewLocationFetcher(geoapi.NewClient(baseURL, timeout))
//	provinces, err := fetcher.FetchProvinces(ctx, locale)
//	if errors.Is(err, errs.ErrNetwork) {
//	    // show an empty dropdown
//	}
type LocationFetcher struct {
	client ports.GeographyClient
}

func NewLocationFetcher(client ports.GeographyClient) LocationFetcher {
	return LocationFetcher{client: client}
}

func (f LocationFetcher) FetchProvinces(ctx context.Context, locale i18n.Locale) ([]geography.Province, error) {
	provinces, err := f.client.FetchProvinces(ctx)
	if err != nil {
		return nil, err
	}
	return sorted(provinces, locale), nil
}

// FetchDistricts returns the districts of provinceCode. An unknown province
// yields an empty list.
func (f LocationFetcher) FetchDistricts(
	ctx context.Context,
	provinceCode geography.Code,
	locale i18n.Locale,
) ([]geography.District, error) {
	districts, err := f.client.FetchDistricts(ctx, provinceCode)
	if err != nil {
		return nil, err
	}
	return sorted(districts, locale), nil
}

// FetchWards returns the wards of districtCode. An unknown district yields an
// empty list.
func (f LocationFetcher) FetchWards(
	ctx context.Context,
	districtCode geography.Code,
	locale i18n.Locale,
) ([]geography.Ward, error) {
	wards, err := f.client.FetchWards(ctx, districtCode)
	if err != nil {
		return nil, err
	}
	return sorted(wards, locale), nil
}

func sorted[T geography.Area](areas []T, locale i18n.Locale) []T {
	out := make([]T, len(areas))
	copy(out, areas)
	geography.SortByName(out, locale)
	return out
}
