package commands

import (
	"errors"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

var ErrChooseDistrictCommandIsNotConstructed = errors.New(
	"ChooseDistrictCommand must be created via NewChooseDistrictCommand constructor",
)

// ChooseDistrictCommand selects a district from the form's district list.
type ChooseDistrictCommand struct { //nolint:recvcheck //using for validation
	formID       kernel.UUID
	districtCode geography.Code
	locale       i18n.Locale

	guard guard.ConstructorGuard
}

func NewChooseDistrictCommand(
	formID kernel.UUID,
	districtCode geography.Code,
	locale i18n.Locale,
) (ChooseDistrictCommand, error) {
	cmd := ChooseDistrictCommand{guard: guard.NewConstructorGuard(), locale: locale}

	if err := errors.Join(
		cmd.setFormID(formID),
		cmd.setDistrictCode(districtCode),
	); err != nil {
		return ChooseDistrictCommand{}, err
	}

	return cmd, nil
}

func (c ChooseDistrictCommand) Validate() error {
	return c.guard.Validate(ErrChooseDistrictCommandIsNotConstructed)
}

func (c ChooseDistrictCommand) FormID() kernel.UUID          { return c.formID }
func (c ChooseDistrictCommand) DistrictCode() geography.Code { return c.districtCode }
func (c ChooseDistrictCommand) Locale() i18n.Locale          { return c.locale }

func (c *ChooseDistrictCommand) setFormID(formID kernel.UUID) error {
	if err := formID.Validate(); err != nil {
		return err
	}
	c.formID = formID
	return nil
}

func (c *ChooseDistrictCommand) setDistrictCode(code geography.Code) error {
	if code <= 0 {
		return errs.NewValueIsOutOfRangeError("districtCode", int(code), 1, "unbounded")
	}
	c.districtCode = code
	return nil
}
