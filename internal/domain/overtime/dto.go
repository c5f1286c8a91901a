package overtime

import "github.com/shopspring/decimal"

type SubmitOvertimeRequest struct {
	Date            string `json:"date"` // YYYY-MM-DD
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason"`
	Compensation    string `json:"compensation"`
	IsHoliday       bool   `json:"is_holiday"`
}

type UpdateOvertimeRequest struct {
	ID              string  `json:"id"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Reason          *string `json:"reason,omitempty"`
	Compensation    *string `json:"compensation,omitempty"`
}

type RejectOvertimeRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type OvertimeResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Date             string          `json:"date"`
	DurationMinutes  int             `json:"duration_minutes"`
	Reason           string          `json:"reason"`
	Compensation     string          `json:"compensation"`
	IsHoliday        bool            `json:"is_holiday"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	Status           string          `json:"status"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
}
