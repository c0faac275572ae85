package delivery

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Variant selects which rules the form binder applies.
type Variant string

const (
	Checkout   Variant = "checkout"
	AddAddress Variant = "add_address"
)

func (v Variant) Validate() error {
	switch v {
	case Checkout, AddAddress:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("variant", fmt.Errorf("%q is not a valid form variant", string(v)))
	}
}

// RequiresPaymentType reports whether the variant asks for a payment type.
func (v Variant) RequiresPaymentType() bool {
	return v == Checkout
}

// PaymentType is how a checkout is paid.
type PaymentType string

const (
	CashOnDelivery PaymentType = "cod"
	Online         PaymentType = "online"
)

func (p PaymentType) Validate() error {
	switch p {
	case CashOnDelivery, Online:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid payment type", string(p)))
	}
}
