package leave

import (
	"github.com/shopspring/decimal"
)

type CreateLeaveTypeRequest struct {
	Name               string           `json:"name"`
	IsPaid             bool             `json:"is_paid"`
	MaxBalance         *decimal.Decimal `json:"max_balance,omitempty"`
	AccrualEnabled     bool             `json:"accrual_enabled"`
	AccrualRate        decimal.Decimal  `json:"accrual_rate"`
	CarryoverAllowed   bool             `json:"carryover_allowed"`
	CarryoverMax       *decimal.Decimal `json:"carryover_max,omitempty"`
	ExpiresAfterMonths int              `json:"expires_after_months"`
	RequiresAttachment bool             `json:"requires_attachment"`
}

type UpdateLeaveTypeRequest struct {
	ID                 string           `json:"id"`
	Name               *string          `json:"name,omitempty"`
	IsPaid             *bool            `json:"is_paid,omitempty"`
	MaxBalance         *decimal.Decimal `json:"max_balance,omitempty"`
	AccrualEnabled     *bool            `json:"accrual_enabled,omitempty"`
	AccrualRate        *decimal.Decimal `json:"accrual_rate,omitempty"`
	CarryoverAllowed   *bool            `json:"carryover_allowed,omitempty"`
	CarryoverMax       *decimal.Decimal `json:"carryover_max,omitempty"`
	ExpiresAfterMonths *int             `json:"expires_after_months,omitempty"`
	RequiresAttachment *bool            `json:"requires_attachment,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

type LeaveTypeResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	IsPaid             bool             `json:"is_paid"`
	MaxBalance         *decimal.Decimal `json:"max_balance,omitempty"`
	AccrualEnabled     bool             `json:"accrual_enabled"`
	AccrualRate        decimal.Decimal  `json:"accrual_rate"`
	CarryoverAllowed   bool             `json:"carryover_allowed"`
	CarryoverMax       *decimal.Decimal `json:"carryover_max,omitempty"`
	ExpiresAfterMonths int              `json:"expires_after_months"`
	RequiresAttachment bool             `json:"requires_attachment"`
	IsActive           bool             `json:"is_active"`
}

type BalanceResponse struct {
	EmployeeID  string          `json:"employee_id"`
	LeaveTypeID string          `json:"leave_type_id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Balance     decimal.Decimal `json:"balance"`
	Accrued     decimal.Decimal `json:"accrued"`
	Used        decimal.Decimal `json:"used"`
	CarriedOver decimal.Decimal `json:"carried_over"`
	Expired     decimal.Decimal `json:"expired"`
}

type SetManualQuotaRequest struct {
	EmployeeID  string          `json:"employee_id"`
	LeaveTypeID string          `json:"leave_type_id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Balance     decimal.Decimal `json:"balance"`
}

type SubmitLeaveRequest struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	EndDate       string  `json:"end_date"`   // YYYY-MM-DD
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

type UpdateLeaveRequest struct {
	ID            string  `json:"id"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

type RejectLeaveRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	LeaveTypeID     string          `json:"leave_type_id"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Days            decimal.Decimal `json:"days"`
	Reason          string          `json:"reason"`
	AttachmentURL   *string         `json:"attachment_url,omitempty"`
	Status          string          `json:"status"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
}
