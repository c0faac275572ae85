package geography

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrProvinceIsNotConstructed = errors.New("Province must be created via NewProvince constructor")
	ErrDistrictIsNotConstructed = errors.New("District must be created via NewDistrict constructor")
	ErrWardIsNotConstructed     = errors.New("Ward must be created via NewWard constructor")
)

// Code is an identifier issued by the geography service.
type Code int

func (c Code) validate(paramName string) error {
	if c <= 0 {
		return errs.NewValueIsOutOfRangeError(paramName, int(c), 1, "unbounded")
	}
	return nil
}

// Province is a top-level administrative area.
type Province struct {
	code  Code
	name  string
	guard guard.ConstructorGuard
}

func NewProvince(code Code, name string) (Province, error) {
	p := Province{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		code.validate("province code"),
		validateName("province name", name),
	); err != nil {
		return Province{}, err
	}
	p.code = code
	p.name = strings.TrimSpace(name)
	return p, nil
}

func (p Province) Code() Code   { return p.code }
func (p Province) Name() string { return p.name }

func (p Province) Validate() error {
	return p.guard.Validate(ErrProvinceIsNotConstructed)
}

// District belongs to the province identified by ProvinceCode. The parent is
// a back-reference only.
type District struct {
	code         Code
	name         string
	provinceCode Code
	guard        guard.ConstructorGuard
}

func NewDistrict(code Code, name string, provinceCode Code) (District, error) {
	d := District{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		code.validate("district code"),
		validateName("district name", name),
		provinceCode.validate("province code"),
	); err != nil {
		return District{}, err
	}
	d.code = code
	d.name = strings.TrimSpace(name)
	d.provinceCode = provinceCode
	return d, nil
}

func (d District) Code() Code         { return d.code }
func (d District) Name() string       { return d.name }
func (d District) ProvinceCode() Code { return d.provinceCode }

func (d District) Validate() error {
	return d.guard.Validate(ErrDistrictIsNotConstructed)
}

// Ward is the leaf of the hierarchy.
type Ward struct {
	code         Code
	name         string
	districtCode Code
	guard        guard.ConstructorGuard
}

func NewWard(code Code, name string, districtCode Code) (Ward, error) {
	w := Ward{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		code.validate("ward code"),
		validateName("ward name", name),
		districtCode.validate("district code"),
	); err != nil {
		return Ward{}, err
	}
	w.code = code
	w.name = strings.TrimSpace(name)
	w.districtCode = districtCode
	return w, nil
}

func (w Ward) Code() Code         { return w.code }
func (w Ward) Name() string       { return w.name }
func (w Ward) DistrictCode() Code { return w.districtCode }

func (w Ward) Validate() error {
	return w.guard.Validate(ErrWardIsNotConstructed)
}

func validateName(paramName, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
