package format

import (
	"math"
	"time"

	"storefront/internal/pkg/i18n"
)

const (
	daysPerMonth = 146097.0 / 4800.0
	daysPerYear  = 146097.0 / 400.0
)

// CalculateTime describes t relative to now ("3 ngày trước", "in 2 hours").
// Thresholds follow the usual humanised buckets: seconds up to 44s, minutes
// below 45m, hours below 22h, days below 26d, months below 11 months.
func CalculateTime(t, now time.Time, locale i18n.Locale) string {
	diff := now.Sub(t)
	key := i18n.KeyTimePast
	if diff < 0 {
		key = i18n.KeyTimeFuture
		diff = -diff
	}
	return locale.Sprintf(key, humanizeDuration(diff, locale))
}

func humanizeDuration(d time.Duration, locale i18n.Locale) string {
	seconds := math.Round(d.Seconds())
	minutes := math.Round(d.Minutes())
	hours := math.Round(d.Hours())
	rawDays := d.Hours() / 24
	days := math.Round(rawDays)
	months := math.Round(rawDays / daysPerMonth)
	years := math.Round(rawDays / daysPerYear)

	switch {
	case seconds < 45:
		return locale.Sprintf(i18n.KeyTimeS)
	case minutes <= 1:
		return locale.Sprintf(i18n.KeyTimeM)
	case minutes < 45:
		return locale.Sprintf(i18n.KeyTimeMM, int(minutes))
	case hours <= 1:
		return locale.Sprintf(i18n.KeyTimeH)
	case hours < 22:
		return locale.Sprintf(i18n.KeyTimeHH, int(hours))
	case days <= 1:
		return locale.Sprintf(i18n.KeyTimeD)
	case days < 26:
		return locale.Sprintf(i18n.KeyTimeDD, int(days))
	case months <= 1:
		return locale.Sprintf(i18n.KeyTimeMo)
	case months < 11:
		return locale.Sprintf(i18n.KeyTimeMMo, int(months))
	case years <= 1:
		return locale.Sprintf(i18n.KeyTimeY)
	default:
		return locale.Sprintf(i18n.KeyTimeYY, int(years))
	}
}
