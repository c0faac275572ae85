package selection

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Stage is how far down the hierarchy a Selection has progressed.
//
//	Empty ──> ProvinceChosen ──> DistrictChosen ──> WardChosen
//	  ▲              │                  │                │
//	  └──────────────┴──── choosing a province again ────┘
//
// Choosing an upstream level again always drops the levels below it.
type Stage int

const (
	// Unknown is the zero value and is never valid.
	Unknown Stage = iota
	Empty
	ProvinceChosen
	DistrictChosen
	WardChosen
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:        "unknown",
		Empty:          "empty",
		ProvinceChosen: "province_chosen",
		DistrictChosen: "district_chosen",
		WardChosen:     "ward_chosen",
	}
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Stage) Validate() error {
	if s <= Unknown || s > WardChosen {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// ParseStage is the inverse of String for valid stages.
func ParseStage(value string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if stage != Unknown && str == value {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", value))
}

// HasProvince reports whether a province is selected in this stage.
func (s Stage) HasProvince() bool { return s >= ProvinceChosen }

// HasDistrict reports whether a district is selected in this stage.
func (s Stage) HasDistrict() bool { return s >= DistrictChosen }

// HasWard reports whether a ward is selected in this stage.
func (s Stage) HasWard() bool { return s == WardChosen }
