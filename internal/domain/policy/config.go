package policy

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRules governs clock-in/out duration calculation.
type AttendanceRules struct {
	GracePeriodMinutes      int  `json:"grace_period_minutes"`
	RoundingEnabled         bool `json:"rounding_enabled"`
	RoundingIntervalMinutes int  `json:"rounding_interval_minutes"`
	MinimumWorkHours        int  `json:"minimum_work_hours"`
}

func DefaultAttendanceRules() AttendanceRules {
	return AttendanceRules{
		GracePeriodMinutes:      15,
		RoundingEnabled:         true,
		RoundingIntervalMinutes: 15,
		MinimumWorkHours:        4,
	}
}

type DayClass string

const (
	DayClassWeekday DayClass = "WEEKDAY"
	DayClassWeekend DayClass = "WEEKEND"
	DayClassHoliday DayClass = "HOLIDAY"
)

// OvertimeRule is the pay rule for one day class.
type OvertimeRule struct {
	Enabled    bool             `json:"enabled"`
	Multiplier decimal.Decimal  `json:"multiplier"`
	MaxHours   *decimal.Decimal `json:"max_hours,omitempty"`
	MinimumPay decimal.Decimal  `json:"minimum_pay"`
}

// OvertimePolicy holds per-day-class overtime rules. NonWorkingWeekday is the
// company's fixed rest day; together with Saturday and Sunday it classifies at
// the weekend rate even when it is otherwise a working day.
type OvertimePolicy struct {
	NonWorkingWeekday time.Weekday `json:"non_working_weekday"`
	Weekday           OvertimeRule `json:"weekday"`
	Weekend           OvertimeRule `json:"weekend"`
	Holiday           OvertimeRule `json:"holiday"`
}

func DefaultOvertimePolicy() OvertimePolicy {
	return OvertimePolicy{
		NonWorkingWeekday: time.Monday,
		Weekday: OvertimeRule{
			Enabled:    true,
			Multiplier: decimal.NewFromFloat(1.5),
			MinimumPay: decimal.Zero,
		},
		Weekend: OvertimeRule{
			Enabled:    true,
			Multiplier: decimal.NewFromInt(2),
			MinimumPay: decimal.Zero,
		},
		Holiday: OvertimeRule{
			Enabled:    true,
			Multiplier: decimal.NewFromInt(2),
			MinimumPay: decimal.Zero,
		},
	}
}

// Rule returns the rule for a day class.
func (p OvertimePolicy) Rule(class DayClass) OvertimeRule {
	switch class {
	case DayClassWeekend:
		return p.Weekend
	case DayClassHoliday:
		return p.Holiday
	default:
		return p.Weekday
	}
}

// LeavePolicy holds company-wide leave computation settings. The excluded
// weekday is skipped when counting requested leave days; carryover runs once a
// year in CarryoverMonth against the balance stored for ReferenceMonth of the
// prior year.
type LeavePolicy struct {
	ExcludedWeekday    time.Weekday `json:"excluded_weekday"`
	CarryoverMonth     time.Month   `json:"carryover_month"`
	ReferenceMonth     time.Month   `json:"reference_month"`
	ManualQuotaEnabled bool         `json:"manual_quota_enabled"`
}

func DefaultLeavePolicy() LeavePolicy {
	return LeavePolicy{
		ExcludedWeekday:    time.Sunday,
		CarryoverMonth:     time.January,
		ReferenceMonth:     time.December,
		ManualQuotaEnabled: false,
	}
}

type ContributionMethod string

const (
	ContributionPercentage ContributionMethod = "PERCENTAGE"
	ContributionFixed      ContributionMethod = "FIXED"
)

// ContributionScheme is one statutory contribution (health or employment
// insurance), split into employee and employer portions. Percentage values are
// percents of base pay, not fractions.
type ContributionScheme struct {
	Enabled         bool               `json:"enabled"`
	Method          ContributionMethod `json:"method"`
	EmployeePercent decimal.Decimal    `json:"employee_percent"`
	EmployerPercent decimal.Decimal    `json:"employer_percent"`
	EmployeeAmount  decimal.Decimal    `json:"employee_amount"`
	EmployerAmount  decimal.Decimal    `json:"employer_amount"`
}

// PayrollConfig holds the company's fixed pay components and statutory
// contribution schemes.
type PayrollConfig struct {
	TransportAllowance  decimal.Decimal    `json:"transport_allowance"`
	LunchAllowance      decimal.Decimal    `json:"lunch_allowance"`
	HolidayBonus        decimal.Decimal    `json:"holiday_bonus"`
	HealthInsurance     ContributionScheme `json:"health_insurance"`
	EmploymentInsurance ContributionScheme `json:"employment_insurance"`
}

func DefaultPayrollConfig() PayrollConfig {
	return PayrollConfig{
		TransportAllowance: decimal.Zero,
		LunchAllowance:     decimal.Zero,
		HolidayBonus:       decimal.Zero,
		HealthInsurance: ContributionScheme{
			Enabled:         true,
			Method:          ContributionPercentage,
			EmployeePercent: decimal.NewFromInt(1),
			EmployerPercent: decimal.NewFromInt(4),
		},
		EmploymentInsurance: ContributionScheme{
			Enabled:         true,
			Method:          ContributionPercentage,
			EmployeePercent: decimal.NewFromInt(2),
			EmployerPercent: decimal.NewFromFloat(3.7),
		},
	}
}

// ParseAttendanceRules decodes a stored config blob. A nil blob yields the
// engine defaults; a malformed blob is a validation failure, not a silent
// fallback.
func ParseAttendanceRules(raw json.RawMessage) (AttendanceRules, error) {
	rules := DefaultAttendanceRules()
	if len(raw) == 0 {
		return rules, nil
	}
	if err := json.Unmarshal(raw, &rules); err != nil {
		return AttendanceRules{}, fmt.Errorf("%w: attendance rules: %v", ErrMalformedPolicy, err)
	}
	if rules.RoundingEnabled && rules.RoundingIntervalMinutes <= 0 {
		return AttendanceRules{}, fmt.Errorf("%w: rounding interval must be positive", ErrMalformedPolicy)
	}
	return rules, nil
}

func ParseOvertimePolicy(raw json.RawMessage) (OvertimePolicy, error) {
	p := DefaultOvertimePolicy()
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return OvertimePolicy{}, fmt.Errorf("%w: overtime policy: %v", ErrMalformedPolicy, err)
	}
	return p, nil
}

func ParseLeavePolicy(raw json.RawMessage) (LeavePolicy, error) {
	p := DefaultLeavePolicy()
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return LeavePolicy{}, fmt.Errorf("%w: leave policy: %v", ErrMalformedPolicy, err)
	}
	return p, nil
}

func ParsePayrollConfig(raw json.RawMessage) (PayrollConfig, error) {
	p := DefaultPayrollConfig()
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return PayrollConfig{}, fmt.Errorf("%w: payroll config: %v", ErrMalformedPolicy, err)
	}
	return p, nil
}
