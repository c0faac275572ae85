package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrGetDeliveryFormQueryIsNotConstructed = errors.New(
	"GetDeliveryFormQuery must be created via NewGetDeliveryFormQuery constructor",
)

// GetDeliveryFormQuery reads the current state of an open form.
type GetDeliveryFormQuery struct {
	formID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetDeliveryFormQuery(formID kernel.UUID) (GetDeliveryFormQuery, error) {
	if err := formID.Validate(); err != nil {
		return GetDeliveryFormQuery{}, err
	}
	return GetDeliveryFormQuery{formID: formID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryFormQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryFormQueryIsNotConstructed)
}

// GetDeliveryFormQueryResponse mirrors what the form shows: the chosen levels
// and the options of the next dropdowns.
type GetDeliveryFormQueryResponse struct {
	ID        kernel.UUID
	Variant   delivery.Variant
	Stage     string
	Province  *AreaResponse
	District  *AreaResponse
	Ward      *AreaResponse
	Location  delivery.Location
	Districts []AreaResponse
	Wards     []AreaResponse
	TouchedAt time.Time
}

type GetDeliveryFormQueryHandler struct {
	store ports.SelectionStore
}

func NewGetDeliveryFormQueryHandler(store ports.SelectionStore) GetDeliveryFormQueryHandler {
	return GetDeliveryFormQueryHandler{store: store}
}

func (h GetDeliveryFormQueryHandler) Handle(
	ctx context.Context,
	q GetDeliveryFormQuery,
) (GetDeliveryFormQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetDeliveryFormQueryResponse{}, err
	}

	s, err := h.store.Get(ctx, q.formID)
	if err != nil {
		return GetDeliveryFormQueryResponse{}, err
	}

	resp := GetDeliveryFormQueryResponse{
		ID:        s.ID(),
		Variant:   s.Variant(),
		Stage:     s.Stage().String(),
		Location:  s.Location(),
		Districts: districtResponses(s.Districts()),
		Wards:     wardResponses(s.Wards()),
		TouchedAt: s.TouchedAt(),
	}
	if p, ok := s.Province(); ok {
		resp.Province = &AreaResponse{Code: int(p.Code()), Name: p.Name()}
	}
	if d, ok := s.District(); ok {
		resp.District = &AreaResponse{Code: int(d.Code()), Name: d.Name(), ParentCode: int(d.ProvinceCode())}
	}
	if w, ok := s.Ward(); ok {
		resp.Ward = &AreaResponse{Code: int(w.Code()), Name: w.Name(), ParentCode: int(w.DistrictCode())}
	}

	return resp, nil
}
