package schedule

import (
	"fmt"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type SlotKind string

const (
	// KindRecurring repeats every week on DayOfWeek.
	KindRecurring SlotKind = "RECURRING"
	// KindDateSpecific applies to exactly one calendar date.
	KindDateSpecific SlotKind = "DATE_SPECIFIC"
)

// ShiftSchedule is one work slot for an employee: either a recurring weekly
// slot or a date-specific one. The kind discriminates which of DayOfWeek and
// Date is meaningful; the other is never set.
type ShiftSchedule struct {
	ID         string
	EmployeeID string
	CompanyID  string

	Kind      SlotKind
	DayOfWeek *time.Weekday
	Date      *calendar.Date

	StartTime string // "15:04"
	EndTime   string // "15:04"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecurring builds a weekly slot.
func NewRecurring(employeeID, companyID string, day time.Weekday, startTime, endTime string) ShiftSchedule {
	return ShiftSchedule{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Kind:       KindRecurring,
		DayOfWeek:  &day,
		StartTime:  startTime,
		EndTime:    endTime,
	}
}

// NewDateSpecific builds a slot for a single date.
func NewDateSpecific(employeeID, companyID string, date calendar.Date, startTime, endTime string) ShiftSchedule {
	return ShiftSchedule{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Kind:       KindDateSpecific,
		Date:       &date,
		StartTime:  startTime,
		EndTime:    endTime,
	}
}

// Validate checks the discriminator invariant and the time window format.
func (s ShiftSchedule) Validate() error {
	switch s.Kind {
	case KindRecurring:
		if s.DayOfWeek == nil || s.Date != nil {
			return ErrInvalidSlotKind
		}
	case KindDateSpecific:
		if s.Date == nil || s.DayOfWeek != nil {
			return ErrInvalidSlotKind
		}
	default:
		return ErrInvalidSlotKind
	}
	if _, err := time.Parse("15:04", s.StartTime); err != nil {
		return fmt.Errorf("%w: start time %q", ErrInvalidTimeWindow, s.StartTime)
	}
	if _, err := time.Parse("15:04", s.EndTime); err != nil {
		return fmt.Errorf("%w: end time %q", ErrInvalidTimeWindow, s.EndTime)
	}
	return nil
}

// AppliesTo reports whether the slot covers the given business day.
func (s ShiftSchedule) AppliesTo(date calendar.Date) bool {
	switch s.Kind {
	case KindRecurring:
		return s.DayOfWeek != nil && *s.DayOfWeek == date.Weekday()
	case KindDateSpecific:
		return s.Date != nil && *s.Date == date
	}
	return false
}

// WindowOn resolves the slot's start and end instants on a business day in
// the given timezone.
func (s ShiftSchedule) WindowOn(date calendar.Date, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start time %q", ErrInvalidTimeWindow, s.StartTime)
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end time %q", ErrInvalidTimeWindow, s.EndTime)
	}

	from := time.Date(date.Year, date.Month, date.Day, start.Hour(), start.Minute(), 0, 0, loc)
	to := time.Date(date.Year, date.Month, date.Day, end.Hour(), end.Minute(), 0, 0, loc)
	// Overnight shift ends the next day.
	if !to.After(from) {
		to = to.Add(24 * time.Hour)
	}
	return from, to, nil
}
