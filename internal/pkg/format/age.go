package format

import (
	"strings"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/i18n"
)

// BirthdayLayout is the accepted birthday format.
const BirthdayLayout = time.DateOnly

// CalculateAge returns the whole months elapsed between birthday and now,
// as "<n> tháng tuổi" in the locale's language. An empty birthday yields the
// locale's "no information" text. An unparseable birthday returns a
// *errs.MalformedDateError.
func CalculateAge(birthday string, now time.Time, locale i18n.Locale) (string, error) {
	birthday = strings.TrimSpace(birthday)
	if birthday == "" {
		return locale.Sprintf(i18n.KeyAgeUnknown), nil
	}

	born, err := parseBirthday(birthday, locale.Location())
	if err != nil {
		return "", errs.NewMalformedDateErrorWithCause(birthday, err)
	}

	return locale.Sprintf(i18n.KeyAgeMonths, MonthsBetween(born, now.In(locale.Location()))), nil
}

// parseBirthday accepts YYYY-MM-DD and, failing that, an RFC 3339 timestamp.
func parseBirthday(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(BirthdayLayout, value, loc)
	if err == nil {
		return t, nil
	}
	if ts, tsErr := time.Parse(time.RFC3339, value); tsErr == nil {
		return ts.In(loc), nil
	}
	return time.Time{}, err
}

// MonthsBetween counts full calendar months from start to end. It is negative
// when end precedes start.
func MonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return -MonthsBetween(end, start)
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	// The last month is incomplete until the day-of-month and clock catch up.
	anniversary := start.AddDate(0, months, 0)
	if anniversary.After(end) {
		months--
	}
	return months
}
