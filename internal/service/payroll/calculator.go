package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/domain/payroll"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
)

var minutesPerHour = decimal.NewFromInt(60)

var half = decimal.NewFromFloat(0.5)

var hundred = decimal.NewFromInt(100)

// Inputs is everything ComputeItem needs for one employee and period.
// Attendance carries the period's records as stored; Overtime carries only
// APPROVED requests dated inside the period.
type Inputs struct {
	Employee employee.Employee
	Config   policy.PayrollConfig

	Attendance []attendance.AttendanceRecord
	Overtime   []overtime.OvertimeRequest
}

// ComputeItem builds the pay snapshot for one employee. Only PRESENT and
// HALF_DAY records earn pay; overtime contributes its frozen amount for
// PAYOUT claims and nothing for TIME_OFF.
func ComputeItem(in Inputs) payroll.PayrollItem {
	breakdown := payroll.Breakdown{
		EmploymentType: string(in.Employee.EmploymentType),
		AttendanceDays: len(in.Attendance),
		TotalHours:     decimal.Zero,
		OvertimeHours:  decimal.Zero,
	}

	totalMinutes := int64(0)
	for _, record := range in.Attendance {
		switch record.Status {
		case attendance.StatusPresent:
			breakdown.PresentDays++
		case attendance.StatusHalfDay:
			breakdown.HalfDays++
		default:
			continue
		}
		minutes := record.WorkDurationMinutes
		if minutes == 0 && record.ClockIn != nil && record.ClockOut != nil {
			// Fallback for rows settled before duration persistence existed.
			minutes = int(record.ClockOut.Sub(*record.ClockIn).Minutes())
			if minutes < 0 {
				minutes = 0
			}
		}
		totalMinutes += int64(minutes)
	}
	breakdown.TotalHours = decimal.NewFromInt(totalMinutes).Div(minutesPerHour)

	basePay := computeBasePay(in.Employee, breakdown)

	overtimePay := decimal.Zero
	overtimeMinutes := int64(0)
	for _, request := range in.Overtime {
		overtimeMinutes += int64(request.DurationMinutes)
		if request.Compensation == overtime.CompensationPayout {
			overtimePay = overtimePay.Add(request.CalculatedAmount)
		}
	}
	breakdown.OvertimeHours = decimal.NewFromInt(overtimeMinutes).Div(minutesPerHour)

	item := payroll.PayrollItem{
		EmployeeID:         in.Employee.ID,
		BasePay:            basePay,
		OvertimePay:        overtimePay,
		Allowances:         decimal.Zero,
		Bonuses:            decimal.Zero,
		TransportAllowance: in.Config.TransportAllowance,
		LunchAllowance:     in.Config.LunchAllowance,
		HolidayBonus:       in.Config.HolidayBonus,
		Deductions:         decimal.Zero,
		Withholding:        decimal.Zero,
		Breakdown:          breakdown,
	}

	item.EmployeeHealthContribution, item.EmployerHealthContribution =
		computeContribution(in.Config.HealthInsurance, basePay, in.Employee.HealthInsuranceEnrolled)
	item.EmployeeEmploymentContribution, item.EmployerEmploymentContribution =
		computeContribution(in.Config.EmploymentInsurance, basePay, in.Employee.EmploymentInsuranceEnrolled)

	Rederive(&item)
	return item
}

// Rederive recomputes gross and net pay from the stored component columns.
// Overrides go through here so they never touch attendance or overtime again.
func Rederive(item *payroll.PayrollItem) {
	item.GrossPay = item.BasePay.
		Add(item.OvertimePay).
		Add(item.Allowances).
		Add(item.Bonuses).
		Add(item.TransportAllowance).
		Add(item.LunchAllowance).
		Add(item.HolidayBonus).
		Sub(item.Deductions)

	item.NetPay = item.GrossPay.
		Sub(item.EmployeeHealthContribution).
		Sub(item.EmployeeEmploymentContribution).
		Sub(item.Withholding)
}

func computeBasePay(emp employee.Employee, breakdown payroll.Breakdown) decimal.Decimal {
	switch emp.EmploymentType {
	case employee.EmploymentMonthly:
		if emp.BaseSalary == nil {
			return decimal.Zero
		}
		return *emp.BaseSalary
	case employee.EmploymentHourly:
		if emp.HourlyRate == nil {
			return decimal.Zero
		}
		return emp.HourlyRate.Mul(breakdown.TotalHours)
	case employee.EmploymentDaily:
		if emp.DailyRate == nil {
			return decimal.Zero
		}
		days := decimal.NewFromInt(int64(breakdown.PresentDays)).
			Add(decimal.NewFromInt(int64(breakdown.HalfDays)).Mul(half))
		return emp.DailyRate.Mul(days)
	}
	return decimal.Zero
}

// computeContribution splits one statutory scheme into employee and employer
// portions. The employee portion applies only when enrolled; the employer
// portion is always owed while the scheme is enabled.
func computeContribution(scheme policy.ContributionScheme, basePay decimal.Decimal, enrolled bool) (decimal.Decimal, decimal.Decimal) {
	if !scheme.Enabled {
		return decimal.Zero, decimal.Zero
	}

	var employeePart, employerPart decimal.Decimal
	switch scheme.Method {
	case policy.ContributionFixed:
		employeePart = scheme.EmployeeAmount
		employerPart = scheme.EmployerAmount
	default:
		employeePart = basePay.Mul(scheme.EmployeePercent).Div(hundred)
		employerPart = basePay.Mul(scheme.EmployerPercent).Div(hundred)
	}

	if !enrolled {
		employeePart = decimal.Zero
	}
	return employeePart, employerPart
}
