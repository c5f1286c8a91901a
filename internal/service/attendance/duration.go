package attendance

import (
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
)

// ComputeDuration derives worked minutes from a clock-in/out pair under the
// company's attendance rules. Negative spans (clock skew, bad adjustments)
// yield 0, never negative pay.
func ComputeDuration(clockIn, clockOut time.Time, rules policy.AttendanceRules) int {
	raw := int(clockOut.Sub(clockIn).Minutes())
	if raw < 0 {
		return 0
	}
	if rules.RoundingEnabled && rules.RoundingIntervalMinutes > 0 {
		raw = roundHalfUp(raw, rules.RoundingIntervalMinutes)
	}
	return raw
}

// roundHalfUp rounds minutes to the nearest multiple of interval, ties up.
func roundHalfUp(minutes, interval int) int {
	return (minutes + interval/2) / interval * interval
}

// LatenessMinutes returns how many minutes actual falls after expected,
// clamped to 0 inside the grace period.
func LatenessMinutes(actual, expected time.Time, graceMinutes int) int {
	diff := int(actual.Sub(expected).Minutes())
	if diff <= graceMinutes {
		return 0
	}
	return diff
}

// EarlyOutMinutes returns how many minutes actual falls before expected,
// clamped to 0 inside the grace period.
func EarlyOutMinutes(actual, expected time.Time, graceMinutes int) int {
	diff := int(expected.Sub(actual).Minutes())
	if diff <= graceMinutes {
		return 0
	}
	return diff
}
