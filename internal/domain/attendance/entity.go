package attendance

import (
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusOnLeave Status = "ON_LEAVE"
)

// AttendanceRecord is the single attendance row per (employee, business day).
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       calendar.Date

	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64

	// Derived from clock times and the attendance rules; always >= 0.
	WorkDurationMinutes int

	Status Status
	Notes  *string

	// Set when the clock event fell outside every scheduled window. The work
	// is tracked as unscheduled overtime rather than blocked.
	UnscheduledOvertime bool

	AdjustmentRequestID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClockedIn reports whether the record has an open clock-in without clock-out.
func (r AttendanceRecord) ClockedIn() bool {
	return r.ClockIn != nil && r.ClockOut == nil
}

// ClockedOut reports whether the record is complete.
func (r AttendanceRecord) ClockedOut() bool {
	return r.ClockIn != nil && r.ClockOut != nil
}

// AdjustmentRequest proposes replacement clock times for one AttendanceRecord.
// At most one pending-or-approved request exists per record; a rejected
// request is overwritten in place on resubmission.
type AdjustmentRequest struct {
	ID                 string
	AttendanceRecordID string
	RequesterID        string
	CompanyID          string

	ProposedClockIn  time.Time
	ProposedClockOut time.Time
	Reason           string

	Status          approval.Status
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
