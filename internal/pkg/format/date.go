package format

import (
	"strconv"
	"time"

	"storefront/internal/pkg/i18n"
)

// FormatDate renders t as a long date in the locale's language and time zone:
// "19 tháng 10, 2026" in Vietnamese, "October 19, 2026" in English.
func FormatDate(t time.Time, locale i18n.Locale) string {
	local := t.In(locale.Location())
	month := locale.Sprintf(i18n.MonthKey(int(local.Month())))
	return locale.Sprintf(i18n.KeyDateLong, local.Day(), month, strconv.Itoa(local.Year()))
}
