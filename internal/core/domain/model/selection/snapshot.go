package selection

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// AreaSnapshot is the stored form of a province, district or ward. ParentCode
// is zero for provinces.
type AreaSnapshot struct {
	Code       int    `json:"code"`
	Name       string `json:"name"`
	ParentCode int    `json:"parentCode,omitempty"`
}

// Snapshot is the stored form of a Selection.
type Snapshot struct {
	ID             string         `json:"id"`
	Variant        string         `json:"variant"`
	Stage          string         `json:"stage"`
	Province       *AreaSnapshot  `json:"province,omitempty"`
	District       *AreaSnapshot  `json:"district,omitempty"`
	Ward           *AreaSnapshot  `json:"ward,omitempty"`
	Districts      []AreaSnapshot `json:"districts,omitempty"`
	Wards          []AreaSnapshot `json:"wards,omitempty"`
	Generation     uint64         `json:"generation"`
	DistrictsToken uint64         `json:"districtsToken"`
	WardsToken     uint64         `json:"wardsToken"`
	TouchedAt      time.Time      `json:"touchedAt"`
}

func (s *Selection) Snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.id.String(),
		Variant:        string(s.variant),
		Stage:          s.stage.String(),
		Generation:     s.generation,
		DistrictsToken: uint64(s.districtsToken),
		WardsToken:     uint64(s.wardsToken),
		TouchedAt:      s.touchedAt,
	}
	if p, ok := s.Province(); ok {
		snap.Province = &AreaSnapshot{Code: int(p.Code()), Name: p.Name()}
	}
	if d, ok := s.District(); ok {
		snap.District = districtSnapshot(d)
	}
	if w, ok := s.Ward(); ok {
		snap.Ward = wardSnapshot(w)
	}
	for _, d := range s.districts {
		snap.Districts = append(snap.Districts, *districtSnapshot(d))
	}
	for _, w := range s.wards {
		snap.Wards = append(snap.Wards, *wardSnapshot(w))
	}
	return snap
}

// Restore rebuilds a Selection from a snapshot, rejecting snapshots whose
// stage disagrees with the chosen levels.
func Restore(snap Snapshot) (*Selection, error) {
	id, err := kernel.UUIDFromString(snap.ID)
	if err != nil {
		return nil, err
	}
	stage, err := ParseStage(snap.Stage)
	if err != nil {
		return nil, err
	}
	variant := delivery.Variant(snap.Variant)
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if snap.TouchedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("touchedAt")
	}
	if (snap.Province != nil) != stage.HasProvince() ||
		(snap.District != nil) != stage.HasDistrict() ||
		(snap.Ward != nil) != stage.HasWard() {
		return nil, errs.NewValueIsInvalidErrorWithCause("stage",
			errors.New("chosen levels do not match stage "+stage.String()))
	}

	s := &Selection{
		id:             id,
		variant:        variant,
		stage:          stage,
		generation:     snap.Generation,
		districtsToken: Token(snap.DistrictsToken),
		wardsToken:     Token(snap.WardsToken),
		touchedAt:      snap.TouchedAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if snap.Province != nil {
		if s.province, err = geography.NewProvince(geography.Code(snap.Province.Code), snap.Province.Name); err != nil {
			return nil, err
		}
	}
	if snap.District != nil {
		if s.district, err = restoreDistrict(*snap.District); err != nil {
			return nil, err
		}
	}
	if snap.Ward != nil {
		if s.ward, err = restoreWard(*snap.Ward); err != nil {
			return nil, err
		}
	}
	for _, a := range snap.Districts {
		d, err := restoreDistrict(a)
		if err != nil {
			return nil, err
		}
		s.districts = append(s.districts, d)
	}
	for _, a := range snap.Wards {
		w, err := restoreWard(a)
		if err != nil {
			return nil, err
		}
		s.wards = append(s.wards, w)
	}

	return s, nil
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	c := *s
	c.districts = s.Districts()
	c.wards = s.Wards()
	return &c
}

func districtSnapshot(d geography.District) *AreaSnapshot {
	return &AreaSnapshot{Code: int(d.Code()), Name: d.Name(), ParentCode: int(d.ProvinceCode())}
}

func wardSnapshot(w geography.Ward) *AreaSnapshot {
	return &AreaSnapshot{Code: int(w.Code()), Name: w.Name(), ParentCode: int(w.DistrictCode())}
}

func restoreDistrict(a AreaSnapshot) (geography.District, error) {
	return geography.NewDistrict(geography.Code(a.Code), a.Name, geography.Code(a.ParentCode))
}

func restoreWard(a AreaSnapshot) (geography.Ward, error) {
	return geography.NewWard(geography.Code(a.Code), a.Name, geography.Code(a.ParentCode))
}
