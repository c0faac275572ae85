package format

import (
	"strings"

	"storefront/internal/pkg/i18n"

	"github.com/shopspring/decimal"
)

// CurrencySuffix is appended to every formatted price.
const CurrencySuffix = "đ"

// FormatPrice renders amount in whole đồng with "." as thousands separator,
// e.g. 150000 -> "150.000đ". Fractions are rounded half away from zero.
func FormatPrice(amount decimal.Decimal, locale i18n.Locale) string {
	whole := amount.Round(0).IntPart()
	grouped := locale.Printer().Sprintf("%d", whole)
	return strings.ReplaceAll(grouped, ",", ".") + CurrencySuffix
}

// FormatPriceInt is FormatPrice for integer amounts.
func FormatPriceInt(amount int64, locale i18n.Locale) string {
	return FormatPrice(decimal.NewFromInt(amount), locale)
}
