package selection

import (
	"errors"
	"slices"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrSelectionIsNotConstructed = errors.New("Selection must be created via NewSelection constructor")
	ErrProvinceNotChosen         = errors.New("province must be chosen first")
	ErrDistrictNotChosen         = errors.New("district must be chosen first")
)

// Token identifies the request for a child list. Zero means no request is
// outstanding.
type Token uint64

type Selection struct {
	id      kernel.UUID
	variant delivery.Variant
	stage   Stage

	province geography.Province
	district geography.District
	ward     geography.Ward

	districts []geography.District
	wards     []geography.Ward

	generation     uint64
	districtsToken Token
	wardsToken     Token

	touchedAt time.Time
	guard     guard.ConstructorGuard
}

func NewSelection(id kernel.UUID, variant delivery.Variant, now time.Time) (*Selection, error) {
	if err := errors.Join(id.Validate(), variant.Validate()); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}
	return &Selection{
		id:        id,
		variant:   variant,
		stage:     Empty,
		touchedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *Selection) Validate() error {
	if s == nil {
		return ErrSelectionIsNotConstructed
	}
	return s.guard.Validate(ErrSelectionIsNotConstructed)
}

// ChooseProvince selects p and drops everything below it. The returned token
// must accompany the district list fetched for p.
func (s *Selection) ChooseProvince(p geography.Province, now time.Time) (Token, error) {
	if err := errors.Join(s.Validate(), p.Validate()); err != nil {
		return 0, err
	}

	s.province = p
	s.district = geography.District{}
	s.ward = geography.Ward{}
	s.districts = nil
	s.wards = nil
	s.stage = ProvinceChosen
	s.districtsToken = s.nextToken()
	s.wardsToken = 0
	s.touch(now)

	return s.districtsToken, nil
}

// ApplyDistricts installs the district list fetched for token. It reports
// false and changes nothing when token is no longer current.
func (s *Selection) ApplyDistricts(token Token, districts []geography.District) bool {
	if s.Validate() != nil || token == 0 || token != s.districtsToken || !s.stage.HasProvince() {
		return false
	}

	accepted := make([]geography.District, 0, len(districts))
	for _, d := range districts {
		if d.ProvinceCode() == s.province.Code() {
			accepted = append(accepted, d)
		}
	}
	s.districts = accepted
	return true
}

// ChooseDistrict selects the district with code from the current list and
// drops the ward and the ward list.
func (s *Selection) ChooseDistrict(code geography.Code, now time.Time) (geography.District, Token, error) {
	if err := s.Validate(); err != nil {
		return geography.District{}, 0, err
	}
	if !s.stage.HasProvince() {
		return geography.District{}, 0, outOfOrder("district", ErrProvinceNotChosen)
	}

	d, ok := geography.Find(s.districts, code)
	if !ok {
		return geography.District{}, 0, errs.NewObjectNotFoundError("districtCode", int(code))
	}

	s.district = d
	s.ward = geography.Ward{}
	s.wards = nil
	s.stage = DistrictChosen
	s.wardsToken = s.nextToken()
	s.touch(now)

	return d, s.wardsToken, nil
}

// ApplyWards installs the ward list fetched for token. It reports false and
// changes nothing when token is no longer current.
func (s *Selection) ApplyWards(token Token, wards []geography.Ward) bool {
	if s.Validate() != nil || token == 0 || token != s.wardsToken || !s.stage.HasDistrict() {
		return false
	}

	accepted := make([]geography.Ward, 0, len(wards))
	for _, w := range wards {
		if w.DistrictCode() == s.district.Code() {
			accepted = append(accepted, w)
		}
	}
	s.wards = accepted
	return true
}

// ChooseWard selects the ward with code from the current list.
func (s *Selection) ChooseWard(code geography.Code, now time.Time) (geography.Ward, error) {
	if err := s.Validate(); err != nil {
		return geography.Ward{}, err
	}
	if !s.stage.HasDistrict() {
		return geography.Ward{}, outOfOrder("ward", ErrDistrictNotChosen)
	}

	w, ok := geography.Find(s.wards, code)
	if !ok {
		return geography.Ward{}, errs.NewObjectNotFoundError("wardCode", int(code))
	}

	s.ward = w
	s.stage = WardChosen
	s.touch(now)

	return w, nil
}

// Location returns the chosen names. Levels not chosen yet are empty.
func (s *Selection) Location() delivery.Location {
	var loc delivery.Location
	if s.stage.HasProvince() {
		loc.Province = s.province.Name()
	}
	if s.stage.HasDistrict() {
		loc.District = s.district.Name()
	}
	if s.stage.HasWard() {
		loc.Ward = s.ward.Name()
	}
	return loc
}

func (s *Selection) ID() kernel.UUID                 { return s.id }
func (s *Selection) Variant() delivery.Variant       { return s.variant }
func (s *Selection) Stage() Stage                    { return s.stage }
func (s *Selection) TouchedAt() time.Time            { return s.touchedAt }
func (s *Selection) DistrictsToken() Token           { return s.districtsToken }
func (s *Selection) WardsToken() Token               { return s.wardsToken }
func (s *Selection) Districts() []geography.District { return slices.Clone(s.districts) }
func (s *Selection) Wards() []geography.Ward         { return slices.Clone(s.wards) }

func (s *Selection) Province() (geography.Province, bool) {
	return s.province, s.stage.HasProvince()
}

func (s *Selection) District() (geography.District, bool) {
	return s.district, s.stage.HasDistrict()
}

func (s *Selection) Ward() (geography.Ward, bool) {
	return s.ward, s.stage.HasWard()
}

// IsExpired reports whether the selection was last touched more than ttl ago.
func (s *Selection) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.touchedAt) > ttl
}

func (s *Selection) nextToken() Token {
	s.generation++
	return Token(s.generation)
}

func (s *Selection) touch(now time.Time) {
	if !now.IsZero() {
		s.touchedAt = now.UTC()
	}
}

func outOfOrder(field string, cause error) *errs.ValidationError {
	return errs.NewValidationError(errs.FieldError{
		Field:   field,
		Tag:     "order",
		Message: cause.Error(),
	})
}
