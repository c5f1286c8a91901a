package overtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

// monthlyDivisor converts a monthly salary into an hourly equivalent.
var monthlyDivisor = decimal.NewFromInt(173)

var hoursPerDay = decimal.NewFromInt(8)

var minutesPerHour = decimal.NewFromInt(60)

// ClassifyDay buckets a date for overtime pay. An explicit holiday flag wins;
// Saturday, Sunday and the company's rest day classify as weekend.
func ClassifyDay(date calendar.Date, isHoliday bool, pol policy.OvertimePolicy) policy.DayClass {
	if isHoliday {
		return policy.DayClassHoliday
	}
	switch wd := date.Weekday(); {
	case wd == time.Saturday || wd == time.Sunday || wd == pol.NonWorkingWeekday:
		return policy.DayClassWeekend
	default:
		return policy.DayClassWeekday
	}
}

// HourlyEquivalent derives the hourly rate used for overtime pay. Monthly
// salaries divide by 173, daily rates by 8. A missing rate yields zero.
func HourlyEquivalent(emp employee.Employee) decimal.Decimal {
	switch emp.EmploymentType {
	case employee.EmploymentMonthly:
		if emp.BaseSalary == nil {
			return decimal.Zero
		}
		return emp.BaseSalary.Div(monthlyDivisor)
	case employee.EmploymentHourly:
		if emp.HourlyRate == nil {
			return decimal.Zero
		}
		return *emp.HourlyRate
	case employee.EmploymentDaily:
		if emp.DailyRate == nil {
			return decimal.Zero
		}
		return emp.DailyRate.Div(hoursPerDay)
	}
	return decimal.Zero
}

// ComputePay calculates the payout for an overtime claim under the policy
// active right now. Hours above the per-class cap are cut, not carried over.
func ComputePay(durationMinutes int, date calendar.Date, isHoliday bool, emp employee.Employee, pol policy.OvertimePolicy) decimal.Decimal {
	if durationMinutes <= 0 {
		return decimal.Zero
	}

	rule := pol.Rule(ClassifyDay(date, isHoliday, pol))
	if !rule.Enabled {
		return decimal.Zero
	}

	rate := HourlyEquivalent(emp)
	if rate.IsZero() {
		return decimal.Zero
	}

	hours := decimal.NewFromInt(int64(durationMinutes)).Div(minutesPerHour)
	if rule.MaxHours != nil && hours.GreaterThan(*rule.MaxHours) {
		hours = *rule.MaxHours
	}

	pay := rate.Mul(hours).Mul(rule.Multiplier)
	if rule.MinimumPay.IsPositive() && pay.LessThan(rule.MinimumPay) {
		pay = rule.MinimumPay
	}
	return pay
}
