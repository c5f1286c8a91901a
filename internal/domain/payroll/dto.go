package payroll

import "github.com/shopspring/decimal"

type CreateRunRequest struct {
	PeriodYear  int `json:"period_year"`
	PeriodMonth int `json:"period_month"`
}

func (r CreateRunRequest) Validate() error {
	if r.PeriodYear < 2000 || r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		return ErrInvalidPeriod
	}
	return nil
}

// OverrideItemRequest manually overrides line items of one payroll item.
// Gross and net are re-derived from the stored base/overtime/contribution
// snapshot, never recomputed from attendance.
type OverrideItemRequest struct {
	ItemID      string           `json:"item_id"`
	Allowances  *decimal.Decimal `json:"allowances,omitempty"`
	Bonuses     *decimal.Decimal `json:"bonuses,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Withholding *decimal.Decimal `json:"withholding,omitempty"`
}

type RunResponse struct {
	ID          string          `json:"id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []ItemResponse  `json:"items,omitempty"`
}

type ItemResponse struct {
	ID                             string          `json:"id"`
	EmployeeID                     string          `json:"employee_id"`
	BasePay                        decimal.Decimal `json:"base_pay"`
	OvertimePay                    decimal.Decimal `json:"overtime_pay"`
	Allowances                     decimal.Decimal `json:"allowances"`
	Bonuses                        decimal.Decimal `json:"bonuses"`
	TransportAllowance             decimal.Decimal `json:"transport_allowance"`
	LunchAllowance                 decimal.Decimal `json:"lunch_allowance"`
	HolidayBonus                   decimal.Decimal `json:"holiday_bonus"`
	Deductions                     decimal.Decimal `json:"deductions"`
	GrossPay                       decimal.Decimal `json:"gross_pay"`
	EmployeeHealthContribution     decimal.Decimal `json:"employee_health_contribution"`
	EmployerHealthContribution     decimal.Decimal `json:"employer_health_contribution"`
	EmployeeEmploymentContribution decimal.Decimal `json:"employee_employment_contribution"`
	EmployerEmploymentContribution decimal.Decimal `json:"employer_employment_contribution"`
	Withholding                    decimal.Decimal `json:"withholding"`
	NetPay                         decimal.Decimal `json:"net_pay"`
	Breakdown                      Breakdown       `json:"breakdown"`
}
