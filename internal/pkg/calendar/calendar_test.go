package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CrossesMidnightInClientZone(t *testing.T) {
	n, err := NewNormalizer("Asia/Jakarta")
	require.NoError(t, err)

	// 23:30 UTC on Jan 5 is already Jan 6 in Jakarta (UTC+7).
	instant := time.Date(2025, 1, 5, 23, 30, 0, 0, time.UTC)
	got := n.Normalize(instant)

	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 6}, got)
}

func TestNormalize_SameDayRegardlessOfClientZone(t *testing.T) {
	n, err := NewNormalizer("Asia/Jakarta")
	require.NoError(t, err)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	utcInstant := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)
	nyInstant := utcInstant.In(ny)

	assert.Equal(t, n.Normalize(utcInstant), n.Normalize(nyInstant))
}

func TestNormalizeString(t *testing.T) {
	n, err := NewNormalizer("Asia/Jakarta")
	require.NoError(t, err)

	got, err := n.NormalizeString("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 15}, got)

	_, err = n.NormalizeString("15/06/2025")
	assert.Error(t, err)
}

func TestDateWeekday(t *testing.T) {
	// 2025-01-05 is a Sunday.
	d := Date{Year: 2025, Month: time.January, Day: 5}
	assert.Equal(t, time.Sunday, d.Weekday())
	assert.Equal(t, time.Monday, d.AddDays(1).Weekday())
}

func TestDaysBetween(t *testing.T) {
	start := Date{Year: 2025, Month: time.January, Day: 5}

	assert.Equal(t, 1, start.DaysBetween(start))
	assert.Equal(t, 8, start.DaysBetween(start.AddDays(7)))
	assert.Equal(t, 0, start.DaysBetween(start.AddDays(-1)))

	// Month boundary
	assert.Equal(t, 29, Date{2025, time.January, 31}.DaysBetween(Date{2025, time.February, 28}))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(2025, time.March, 2025, time.March))
	assert.Equal(t, 3, MonthsBetween(2025, time.March, 2025, time.June))
	assert.Equal(t, 12, MonthsBetween(2024, time.July, 2025, time.July))
	assert.Equal(t, 11, MonthsBetween(2024, time.February, 2025, time.January))
}
