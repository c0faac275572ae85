package commands

import (
	"errors"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrChooseWardCommandIsNotConstructed = errors.New(
	"ChooseWardCommand must be created via NewChooseWardCommand constructor",
)

// ChooseWardCommand selects a ward from the form's ward list.
type ChooseWardCommand struct { //nolint:recvcheck //using for validation
	formID   kernel.UUID
	wardCode geography.Code

	guard guard.ConstructorGuard
}

func NewChooseWardCommand(formID kernel.UUID, wardCode geography.Code) (ChooseWardCommand, error) {
	cmd := ChooseWardCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setFormID(formID),
		cmd.setWardCode(wardCode),
	); err != nil {
		return ChooseWardCommand{}, err
	}

	return cmd, nil
}

func (c ChooseWardCommand) Validate() error {
	return c.guard.Validate(ErrChooseWardCommandIsNotConstructed)
}

func (c ChooseWardCommand) FormID() kernel.UUID      { return c.formID }
func (c ChooseWardCommand) WardCode() geography.Code { return c.wardCode }

func (c *ChooseWardCommand) setFormID(formID kernel.UUID) error {
	if err := formID.Validate(); err != nil {
		return err
	}
	c.formID = formID
	return nil
}

func (c *ChooseWardCommand) setWardCode(code geography.Code) error {
	if code <= 0 {
		return errs.NewValueIsOutOfRangeError("wardCode", int(code), 1, "unbounded")
	}
	c.wardCode = code
	return nil
}
