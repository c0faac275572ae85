// Package queries contains the storefront's read operations: geography
// lists, open form state, the address book and presentation models.
package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

var (
	ErrListProvincesQueryIsNotConstructed = errors.New(
		"ListProvincesQuery must be created via NewListProvincesQuery constructor",
	)
	ErrListDistrictsQueryIsNotConstructed = errors.New(
		"ListDistrictsQuery must be created via NewListDistrictsQuery constructor",
	)
	ErrListWardsQueryIsNotConstructed = errors.New(
		"ListWardsQuery must be created via NewListWardsQuery constructor",
	)
)

// LocationFetcher is the sorted view of the geography service.
type LocationFetcher interface {
	FetchProvinces(ctx context.Context, locale i18n.Locale) ([]geography.Province, error)
	FetchDistricts(ctx context.Context, provinceCode geography.Code, locale i18n.Locale) ([]geography.District, error)
	FetchWards(ctx context.Context, districtCode geography.Code, locale i18n.Locale) ([]geography.Ward, error)
}

// AreaResponse is one dropdown option. ParentCode is zero for provinces.
type AreaResponse struct {
	Code       int
	Name       string
	ParentCode int
}

type ListProvincesQuery struct {
	locale i18n.Locale
	guard  guard.ConstructorGuard
}

func NewListProvincesQuery(locale i18n.Locale) ListProvincesQuery {
	return ListProvincesQuery{locale: locale, guard: guard.NewConstructorGuard()}
}

func (q ListProvincesQuery) Validate() error {
	return q.guard.Validate(ErrListProvincesQueryIsNotConstructed)
}

type ListDistrictsQuery struct {
	provinceCode geography.Code
	locale       i18n.Locale
	guard        guard.ConstructorGuard
}

func NewListDistrictsQuery(provinceCode geography.Code, locale i18n.Locale) (ListDistrictsQuery, error) {
	if provinceCode <= 0 {
		return ListDistrictsQuery{}, errs.NewValueIsOutOfRangeError("provinceCode", int(provinceCode), 1, "unbounded")
	}
	return ListDistrictsQuery{provinceCode: provinceCode, locale: locale, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDistrictsQuery) Validate() error {
	return q.guard.Validate(ErrListDistrictsQueryIsNotConstructed)
}

type ListWardsQuery struct {
	districtCode geography.Code
	locale       i18n.Locale
	guard        guard.ConstructorGuard
}

func NewListWardsQuery(districtCode geography.Code, locale i18n.Locale) (ListWardsQuery, error) {
	if districtCode <= 0 {
		return ListWardsQuery{}, errs.NewValueIsOutOfRangeError("districtCode", int(districtCode), 1, "unbounded")
	}
	return ListWardsQuery{districtCode: districtCode, locale: locale, guard: guard.NewConstructorGuard()}, nil
}

func (q ListWardsQuery) Validate() error {
	return q.guard.Validate(ErrListWardsQueryIsNotConstructed)
}

// GeographyQueryHandler answers the three dropdown queries. Lists come back
// sorted by name; a network failure is returned as *errs.NetworkError for
// the caller to degrade.
type GeographyQueryHandler struct {
	fetcher LocationFetcher
}

func NewGeographyQueryHandler(fetcher LocationFetcher) GeographyQueryHandler {
	return GeographyQueryHandler{fetcher: fetcher}
}

func (h GeographyQueryHandler) HandleProvinces(ctx context.Context, q ListProvincesQuery) ([]AreaResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	provinces, err := h.fetcher.FetchProvinces(ctx, q.locale)
	if err != nil {
		return nil, err
	}
	out := make([]AreaResponse, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, AreaResponse{Code: int(p.Code()), Name: p.Name()})
	}
	return out, nil
}

func (h GeographyQueryHandler) HandleDistricts(ctx context.Context, q ListDistrictsQuery) ([]AreaResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	districts, err := h.fetcher.FetchDistricts(ctx, q.provinceCode, q.locale)
	if err != nil {
		return nil, err
	}
	return districtResponses(districts), nil
}

func (h GeographyQueryHandler) HandleWards(ctx context.Context, q ListWardsQuery) ([]AreaResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	wards, err := h.fetcher.FetchWards(ctx, q.districtCode, q.locale)
	if err != nil {
		return nil, err
	}
	return wardResponses(wards), nil
}

func districtResponses(districts []geography.District) []AreaResponse {
	out := make([]AreaResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, AreaResponse{Code: int(d.Code()), Name: d.Name(), ParentCode: int(d.ProvinceCode())})
	}
	return out
}

func wardResponses(wards []geography.Ward) []AreaResponse {
	out := make([]AreaResponse, 0, len(wards))
	for _, w := range wards {
		out = append(out, AreaResponse{Code: int(w.Code()), Name: w.Name(), ParentCode: int(w.DistrictCode())})
	}
	return out
}
