package commands

import (
	"errors"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

var ErrChooseProvinceCommandIsNotConstructed = errors.New(
	"ChooseProvinceCommand must be created via NewChooseProvinceCommand constructor",
)

// ChooseProvinceCommand selects a province on an open form. The locale orders
// the district list loaded afterwards.
type ChooseProvinceCommand struct { //nolint:recvcheck //using for validation
	formID       kernel.UUID
	provinceCode geography.Code
	locale       i18n.Locale

	guard guard.ConstructorGuard
}

func NewChooseProvinceCommand(
	formID kernel.UUID,
	provinceCode geography.Code,
	locale i18n.Locale,
) (ChooseProvinceCommand, error) {
	cmd := ChooseProvinceCommand{guard: guard.NewConstructorGuard(), locale: locale}

	if err := errors.Join(
		cmd.setFormID(formID),
		cmd.setProvinceCode(provinceCode),
	); err != nil {
		return ChooseProvinceCommand{}, err
	}

	return cmd, nil
}

func (c ChooseProvinceCommand) Validate() error {
	return c.guard.Validate(ErrChooseProvinceCommandIsNotConstructed)
}

func (c ChooseProvinceCommand) FormID() kernel.UUID          { return c.formID }
func (c ChooseProvinceCommand) ProvinceCode() geography.Code { return c.provinceCode }
func (c ChooseProvinceCommand) Locale() i18n.Locale          { return c.locale }

func (c *ChooseProvinceCommand) setFormID(formID kernel.UUID) error {
	if err := formID.Validate(); err != nil {
		return err
	}
	c.formID = formID
	return nil
}

func (c *ChooseProvinceCommand) setProvinceCode(code geography.Code) error {
	if code <= 0 {
		return errs.NewValueIsOutOfRangeError("provinceCode", int(code), 1, "unbounded")
	}
	c.provinceCode = code
	return nil
}
