package commands

import (
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

var ErrSubmitDeliveryFormCommandIsNotConstructed = errors.New(
	"SubmitDeliveryFormCommand must be created via NewSubmitDeliveryFormCommand constructor",
)

// SubmitDeliveryFormCommand binds the typed fields to the form's selection.
// AddressID names the address-book entry created by the AddAddress variant;
// the Checkout variant ignores it.
//
// Example:
//
//	cmd, _ := NewSubmitDeliveryFormCommand(formID, kernel.NewUUID(), delivery.Fields{
//	    Receiver:    "An",
//	    PhoneNumber: "0912345678",
//	    Address:     "12 Xuân Thủy",
//	    Type:        "cod",
//	}, locale)
//	result, err := handler.Handle(ctx, cmd)
//	var validationErr *errs.ValidationError
//	if errors.As(err, &validationErr) {
//	    // show validationErr.Fields next to the inputs
//	}
type SubmitDeliveryFormCommand struct { //nolint:recvcheck //using for validation
	formID    kernel.UUID
	addressID kernel.UUID
	fields    delivery.Fields
	locale    i18n.Locale

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryFormCommand(
	formID kernel.UUID,
	addressID kernel.UUID,
	fields delivery.Fields,
	locale i18n.Locale,
) (SubmitDeliveryFormCommand, error) {
	cmd := SubmitDeliveryFormCommand{
		fields: fields,
		locale: locale,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFormID(formID),
		cmd.setAddressID(addressID),
	); err != nil {
		return SubmitDeliveryFormCommand{}, err
	}

	return cmd, nil
}

func (c SubmitDeliveryFormCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryFormCommandIsNotConstructed)
}

func (c SubmitDeliveryFormCommand) FormID() kernel.UUID     { return c.formID }
func (c SubmitDeliveryFormCommand) AddressID() kernel.UUID  { return c.addressID }
func (c SubmitDeliveryFormCommand) Fields() delivery.Fields { return c.fields }
func (c SubmitDeliveryFormCommand) Locale() i18n.Locale     { return c.locale }

func (c *SubmitDeliveryFormCommand) setFormID(formID kernel.UUID) error {
	if err := formID.Validate(); err != nil {
		return err
	}
	c.formID = formID
	return nil
}

func (c *SubmitDeliveryFormCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}
