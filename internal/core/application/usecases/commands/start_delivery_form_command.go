package commands

import (
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrStartDeliveryFormCommandIsNotConstructed = errors.New(
	"StartDeliveryFormCommand must be created via NewStartDeliveryFormCommand constructor",
)

// StartDeliveryFormCommand opens a delivery form with an empty selection.
//
// Example:
//
//	formID := kernel.NewUUID()
//	cmd, err := NewStartDeliveryFormCommand(formID, delivery.Checkout)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open form: %w", err)
//	}
type StartDeliveryFormCommand struct { //nolint:recvcheck //using for validation
	formID  kernel.UUID
	variant delivery.Variant

	guard guard.ConstructorGuard
}

func NewStartDeliveryFormCommand(formID kernel.UUID, variant delivery.Variant) (StartDeliveryFormCommand, error) {
	cmd := StartDeliveryFormCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setFormID(formID),
		cmd.setVariant(variant),
	); err != nil {
		return StartDeliveryFormCommand{}, err
	}

	return cmd, nil
}

func (c StartDeliveryFormCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryFormCommandIsNotConstructed)
}

func (c StartDeliveryFormCommand) FormID() kernel.UUID       { return c.formID }
func (c StartDeliveryFormCommand) Variant() delivery.Variant { return c.variant }

func (c *StartDeliveryFormCommand) setFormID(formID kernel.UUID) error {
	if err := formID.Validate(); err != nil {
		return err
	}
	c.formID = formID
	return nil
}

func (c *StartDeliveryFormCommand) setVariant(variant delivery.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}
	c.variant = variant
	return nil
}
