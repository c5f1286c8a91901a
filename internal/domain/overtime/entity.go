package overtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type CompensationType string

const (
	// CompensationPayout pays the calculated amount through payroll.
	CompensationPayout CompensationType = "PAYOUT"
	// CompensationTimeOff grants time in lieu; contributes zero to pay.
	CompensationTimeOff CompensationType = "TIME_OFF"
)

// OvertimeRequest is one overtime claim per (employee, date). The amount is
// frozen on approval from the policy active at approval time, not at
// submission.
type OvertimeRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string

	Date            calendar.Date
	DurationMinutes int
	Reason          string
	Compensation    CompensationType
	IsHoliday       bool

	CalculatedAmount decimal.Decimal

	Status          approval.Status
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
