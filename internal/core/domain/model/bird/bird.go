// Package bird holds the catalogue entry shown on product cards.
package bird

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBirdIsNotConstructed = errors.New("Bird must be created via NewBird constructor")

// Type says whether a bird is sold or offered for breeding.
type Type string

const (
	Sell  Type = "sell"
	Breed Type = "breed"
)

func (t Type) Validate() error {
	switch t {
	case Sell, Breed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a bird type", string(t)))
	}
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func (g Gender) Validate() error {
	switch g {
	case Male, Female:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%q is not a gender", string(g)))
	}
}

type Bird struct {
	id         string
	name       string
	kind       Type
	gender     Gender
	sellPrice  decimal.Decimal
	breedPrice decimal.Decimal
	imageURLs  []string
	guard      guard.ConstructorGuard
}

// NewBird validates a catalogue entry. Missing prices are treated as zero.
func NewBird(
	id, name string,
	kind Type,
	gender Gender,
	sellPrice, breedPrice decimal.Decimal,
	imageURLs []string,
) (*Bird, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	var idErr, nameErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(
		idErr,
		nameErr,
		kind.Validate(),
		validateGender(kind, gender),
		nonNegative("sellPrice", sellPrice),
		nonNegative("breedPrice", breedPrice),
	); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(imageURLs))
	for _, u := range imageURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	return &Bird{
		id:         id,
		name:       name,
		kind:       kind,
		gender:     gender,
		sellPrice:  sellPrice,
		breedPrice: breedPrice,
		imageURLs:  urls,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (b *Bird) Validate() error {
	if b == nil {
		return ErrBirdIsNotConstructed
	}
	return b.guard.Validate(ErrBirdIsNotConstructed)
}

func (b *Bird) ID() string                  { return b.id }
func (b *Bird) Name() string                { return b.name }
func (b *Bird) Type() Type                  { return b.kind }
func (b *Bird) Gender() Gender              { return b.gender }
func (b *Bird) SellPrice() decimal.Decimal  { return b.sellPrice }
func (b *Bird) BreedPrice() decimal.Decimal { return b.breedPrice }
func (b *Bird) ImageURLs() []string         { return append([]string(nil), b.imageURLs...) }

// Price is the price relevant to the bird's type.
func (b *Bird) Price() decimal.Decimal {
	if b.kind == Breed {
		return b.breedPrice
	}
	return b.sellPrice
}

// validateGender requires a gender on breeding birds only; a sell bird may
// omit it.
func validateGender(kind Type, gender Gender) error {
	if gender == "" {
		if kind == Breed {
			return errs.NewValueIsRequiredError("gender")
		}
		return nil
	}
	return gender.Validate()
}

func nonNegative(paramName string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, v.String(), 0, "unbounded")
	}
	return nil
}
