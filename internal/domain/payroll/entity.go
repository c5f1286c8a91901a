package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type RunStatus string

const (
	RunStatusDraft      RunStatus = "DRAFT"
	RunStatusProcessing RunStatus = "PROCESSING"
	RunStatusLocked     RunStatus = "LOCKED"
	RunStatusPaid       RunStatus = "PAID"
)

// Mutable reports whether the run may still be edited. LOCKED and PAID runs
// are immutable, deletion included.
func (s RunStatus) Mutable() bool {
	return s == RunStatusDraft || s == RunStatusProcessing
}

// PayrollRun is the per-(company, period) payroll container. TotalAmount is
// always the sum of its items' net pay.
type PayrollRun struct {
	ID          string
	CompanyID   string
	PeriodYear  int
	PeriodMonth time.Month
	Status      RunStatus
	TotalAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollItem freezes one employee's pay for a run. The component columns are
// a snapshot; net pay is re-derivable from them without touching attendance
// or overtime again.
type PayrollItem struct {
	ID           string
	PayrollRunID string
	EmployeeID   string

	BasePay            decimal.Decimal
	OvertimePay        decimal.Decimal
	Allowances         decimal.Decimal
	Bonuses            decimal.Decimal
	TransportAllowance decimal.Decimal
	LunchAllowance     decimal.Decimal
	HolidayBonus       decimal.Decimal
	Deductions         decimal.Decimal

	GrossPay decimal.Decimal

	EmployeeHealthContribution     decimal.Decimal
	EmployerHealthContribution     decimal.Decimal
	EmployeeEmploymentContribution decimal.Decimal
	EmployerEmploymentContribution decimal.Decimal

	// Income-tax withholding is a manual-override placeholder; the engine
	// itself always computes 0.
	Withholding decimal.Decimal

	NetPay decimal.Decimal

	Breakdown Breakdown

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Breakdown is the audit/display snapshot stored as JSONB alongside the item.
type Breakdown struct {
	EmploymentType string          `json:"employment_type"`
	AttendanceDays int             `json:"attendance_days"`
	PresentDays    int             `json:"present_days"`
	HalfDays       int             `json:"half_days"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
}

// Value implements driver.Valuer for database storage
func (b Breakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for database retrieval
func (b *Breakdown) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Breakdown: invalid type")
	}
	return json.Unmarshal(bytes, b)
}
