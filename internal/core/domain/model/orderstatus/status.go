// Package orderstatus maps order states to the badge text and colour shown to
// buyers.
package orderstatus

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/i18n"
)

type Status string

const (
	Processing Status = "processing"
	Delivering Status = "delivering"
	Breeding   Status = "breeding"
	Success    Status = "success"
	Canceled   Status = "canceled"
)

// BadgeVariant names the badge style used by the client.
type BadgeVariant string

const (
	BadgeWarning     BadgeVariant = "warning"
	BadgeInfo        BadgeVariant = "info"
	BadgeBreed       BadgeVariant = "breed"
	BadgeSuccess     BadgeVariant = "success"
	BadgeDestructive BadgeVariant = "destructive"
)

var badges = map[Status]BadgeVariant{
	Processing: BadgeWarning,
	Delivering: BadgeInfo,
	Breeding:   BadgeBreed,
	Success:    BadgeSuccess,
	Canceled:   BadgeDestructive,
}

// All lists statuses in lifecycle order.
func All() []Status {
	return []Status{Processing, Delivering, Breeding, Success, Canceled}
}

func (s Status) Validate() error {
	if _, ok := badges[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", string(s)))
	}
	return nil
}

type Presentation struct {
	Status  Status       `json:"status"`
	Label   string       `json:"label"`
	Message string       `json:"message,omitempty"`
	Variant BadgeVariant `json:"variant"`
}

// Present returns the text for s. Breeding orders have no buyer message.
func Present(s Status, locale i18n.Locale) (Presentation, error) {
	if err := s.Validate(); err != nil {
		return Presentation{}, err
	}
	p := Presentation{
		Status:  s,
		Label:   locale.Sprintf(i18n.StatusLabelKey(string(s))),
		Variant: badges[s],
	}
	if s != Breeding {
		p.Message = locale.Sprintf(i18n.StatusMessageKey(string(s)))
	}
	return p, nil
}
