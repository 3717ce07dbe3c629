package timex

import (
	"strconv"
	"strings"
	"time"
)

// Clock supplies the current time. Production code uses SystemClock; tests
// inject a fixed instant so business-day arithmetic stays deterministic.
type Clock func() time.Time

// SystemClock is the wall-clock Clock.
var SystemClock Clock = time.Now

const secondsPerDay = 24 * 60 * 60

// EstimateToSeconds resolves a shipping-estimate string into a duration in
// seconds. The string carries a numeric prefix and a trailing unit code:
//
//	"6bd" — six business days (converted to calendar days via clock)
//	"5d"  — five calendar days
//	"5h"  — five hours
//	"30m" — thirty minutes
//
// Malformed estimates (non-numeric prefix, unknown suffix, empty string) are
// an accepted garbage-in-garbage-out boundary: they resolve to 0 rather than
// failing, so a single bad estimate never aborts a whole parcel computation.
func EstimateToSeconds(estimate string, clock Clock) int64 {
	if clock == nil {
		clock = SystemClock
	}

	unit, digits := splitEstimate(estimate)
	count, err := strconv.Atoi(digits)
	if err != nil || count < 0 {
		return 0
	}

	switch unit {
	case "bd":
		return int64(BusinessDaysToCalendarDays(count, clock())) * secondsPerDay
	case "d":
		return int64(count) * secondsPerDay
	case "h":
		return int64(count) * 60 * 60
	case "m":
		return int64(count) * 60
	default:
		return 0
	}
}

// splitEstimate separates the numeric prefix from the trailing unit code.
func splitEstimate(estimate string) (unit string, digits string) {
	estimate = strings.TrimSpace(strings.ToLower(estimate))
	cut := len(estimate)
	for cut > 0 && !isDigit(estimate[cut-1]) {
		cut--
	}
	return estimate[cut:], estimate[:cut]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// BusinessDaysToCalendarDays converts a count of business days, starting from
// now, into the number of calendar days it spans. Weekends follow the fixed
// Saturday/Sunday rule.
func BusinessDaysToCalendarDays(count int, now time.Time) int {
	days := 0
	cursor := now
	for remaining := count; remaining > 0; {
		cursor = cursor.AddDate(0, 0, 1)
		days++
		if wd := cursor.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return days
}
