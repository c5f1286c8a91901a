package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestComputeDuration_RoundsToNearestInterval(t *testing.T) {
	rules := policy.AttendanceRules{RoundingEnabled: true, RoundingIntervalMinutes: 15}

	// 09:02 -> 17:07 is 485 raw minutes, rounding to 480.
	assert.Equal(t, 480, ComputeDuration(at(9, 2), at(17, 7), rules))

	// 488 raw minutes rounds up to 495.
	assert.Equal(t, 495, ComputeDuration(at(9, 2), at(17, 10), rules))

	// Exact multiples stay put.
	assert.Equal(t, 480, ComputeDuration(at(9, 0), at(17, 0), rules))
}

func TestComputeDuration_NoRounding(t *testing.T) {
	rules := policy.AttendanceRules{RoundingEnabled: false, RoundingIntervalMinutes: 15}
	assert.Equal(t, 485, ComputeDuration(at(9, 2), at(17, 7), rules))
}

func TestComputeDuration_NegativeSpanFloorsAtZero(t *testing.T) {
	rules := policy.DefaultAttendanceRules()
	assert.Equal(t, 0, ComputeDuration(at(17, 0), at(9, 0), rules))
}

func TestLatenessMinutes(t *testing.T) {
	expected := at(9, 0)

	// Inside the grace period lateness clamps to zero.
	assert.Equal(t, 0, LatenessMinutes(at(9, 10), expected, 15))
	assert.Equal(t, 0, LatenessMinutes(at(8, 50), expected, 15))

	// Beyond grace the full offset from the expected time counts.
	assert.Equal(t, 20, LatenessMinutes(at(9, 20), expected, 15))
}

func TestEarlyOutMinutes(t *testing.T) {
	expected := at(17, 0)

	assert.Equal(t, 0, EarlyOutMinutes(at(16, 50), expected, 15))
	assert.Equal(t, 45, EarlyOutMinutes(at(16, 15), expected, 15))
	assert.Equal(t, 0, EarlyOutMinutes(at(17, 30), expected, 15))
}
