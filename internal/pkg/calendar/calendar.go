package calendar

import (
	"fmt"
	"time"
)

// Date is a timezone-agnostic calendar date. Two dates compare equal exactly
// when they name the same business day, no matter which zone the originating
// instant carried.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Normalizer canonicalizes instants into business-day dates using one fixed
// company operating timezone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load business timezone %q: %w", timezone, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the fixed business timezone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize returns the calendar date of t in the business timezone.
func (n *Normalizer) Normalize(t time.Time) Date {
	local := t.In(n.loc)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// NormalizeString parses a YYYY-MM-DD string as a business-day date.
func (n *Normalizer) NormalizeString(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, n.loc)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return n.Normalize(t), nil
}

// Today returns the current business day.
func (n *Normalizer) Today() Date {
	return n.Normalize(time.Now())
}

// StartOfDay returns midnight of d in the business timezone.
func (n *Normalizer) StartOfDay(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, n.loc)
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays returns the date n calendar days after d.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return DateOf(t)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// DaysBetween returns the number of calendar days from d to other, inclusive
// of both endpoints. Returns 0 when other precedes d.
func (d Date) DaysBetween(other Date) int {
	if other.Before(d) {
		return 0
	}
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

// MonthsBetween returns whole months elapsed from period (y1, m1) to (y2, m2).
func MonthsBetween(y1 int, m1 time.Month, y2 int, m2 time.Month) int {
	return (y2-y1)*12 + int(m2) - int(m1)
}
