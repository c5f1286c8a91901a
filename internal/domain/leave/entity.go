package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

// UnlimitedBalance is the sentinel balance for accrual-disabled leave types
// without a cap.
var UnlimitedBalance = decimal.NewFromInt(99999)

// LeaveType is a company-scoped leave policy object. Changes affect future
// balance recomputation only; stored ledger rows are never rewritten.
type LeaveType struct {
	ID        string
	CompanyID string
	Name      string

	IsPaid             bool
	MaxBalance         *decimal.Decimal
	AccrualEnabled     bool
	AccrualRate        decimal.Decimal // days credited per month
	CarryoverAllowed   bool
	CarryoverMax       *decimal.Decimal
	ExpiresAfterMonths int
	RequiresAttachment bool
	IsActive           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance is the ledger row per (employee, leave type, period). Balance
// is derived unless manual-quota mode marks it authoritative. Rows are
// upserted lazily on first read of a period and never deleted.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	CompanyID   string
	PeriodYear  int
	PeriodMonth time.Month

	Balance     decimal.Decimal
	Accrued     decimal.Decimal
	Used        decimal.Decimal
	CarriedOver decimal.Decimal
	Expired     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveRequest spans [StartDate, EndDate] business days. Days excludes the
// company's designated non-working weekday.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	CompanyID   string

	StartDate calendar.Date
	EndDate   calendar.Date
	Days      decimal.Decimal

	Reason        string
	AttachmentURL *string

	Status          approval.Status
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName *string
	EmployeeName  *string
}
