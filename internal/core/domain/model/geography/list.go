package geography

import (
	"slices"

	"storefront/internal/pkg/i18n"
)

// Area is implemented by Province, District and Ward.
type Area interface {
	Code() Code
	Name() string
}

// SortByName orders areas ascending by name using the locale's collation.
// The sort is stable, so equal names keep their upstream order.
func SortByName[T Area](areas []T, locale i18n.Locale) {
	collator := locale.Collator()
	slices.SortStableFunc(areas, func(a, b T) int {
		return collator.CompareString(a.Name(), b.Name())
	})
}

// Find returns the area with the given code.
func Find[T Area](areas []T, code Code) (T, bool) {
	for _, a := range areas {
		if a.Code() == code {
			return a, true
		}
	}
	var zero T
	return zero, false
}
