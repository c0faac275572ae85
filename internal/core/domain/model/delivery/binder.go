package delivery

import (
	"errors"
	"reflect"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/i18n"

	"github.com/go-playground/validator/v10"
)

// fieldOrder is the order fields appear on the form; errors are reported in it.
var fieldOrder = []string{"receiver", "phoneNumber", "province", "district", "ward", "address", "notice", "type"}

// Binder maps a selection and the typed fields into an Info. It is safe for
// concurrent use.
type Binder struct {
	validate *validator.Validate
}

func NewBinder() *Binder {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Binder{validate: v}
}

// Bind validates the submission. On failure it returns a *errs.ValidationError
// with one entry per rejected field, ordered as on the form, and a zero Info.
func (b *Binder) Bind(variant Variant, location Location, fields Fields, locale i18n.Locale) (Info, error) {
	if err := variant.Validate(); err != nil {
		return Info{}, err
	}

	info := Info{
		Receiver:    strings.TrimSpace(fields.Receiver),
		PhoneNumber: strings.TrimSpace(fields.PhoneNumber),
		Province:    strings.TrimSpace(location.Province),
		District:    strings.TrimSpace(location.District),
		Ward:        strings.TrimSpace(location.Ward),
		Address:     strings.TrimSpace(fields.Address),
		Notice:      strings.TrimSpace(fields.Notice),
	}
	if variant.RequiresPaymentType() {
		info.Type = PaymentType(strings.TrimSpace(fields.Type))
	}

	byField := make(map[string]errs.FieldError)

	if err := b.validate.Struct(info); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return Info{}, err
		}
		for _, fe := range validationErrors {
			if _, seen := byField[fe.Field()]; seen {
				continue
			}
			byField[fe.Field()] = errs.FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: validationMessage(fe.Tag(), fe.Param(), locale),
			}
		}
	}

	if variant.RequiresPaymentType() && info.Type == "" {
		byField["type"] = errs.FieldError{
			Field:   "type",
			Tag:     "required",
			Message: validationMessage("required", "", locale),
		}
	}

	if len(byField) == 0 {
		return info, nil
	}

	ordered := make([]errs.FieldError, 0, len(byField))
	for _, name := range fieldOrder {
		if fe, ok := byField[name]; ok {
			ordered = append(ordered, fe)
		}
	}
	return Info{}, errs.NewValidationError(ordered...)
}

func validationMessage(tag, param string, locale i18n.Locale) string {
	switch tag {
	case "required":
		return locale.Sprintf(i18n.KeyValidationRequired)
	case "oneof":
		return locale.Sprintf(i18n.KeyValidationOneOf, param)
	case "max":
		return locale.Sprintf(i18n.KeyValidationMax, param)
	default:
		return locale.Sprintf(i18n.KeyValidationInvalid)
	}
}
