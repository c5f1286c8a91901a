package overtime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

func monthlyEmployee(salary int64) employee.Employee {
	base := decimal.NewFromInt(salary)
	return employee.Employee{
		EmploymentType: employee.EmploymentMonthly,
		BaseSalary:     &base,
	}
}

func TestClassifyDay(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()

	// 2025-06-11 is a Wednesday.
	wednesday := calendar.Date{Year: 2025, Month: time.June, Day: 11}
	assert.Equal(t, policy.DayClassWeekday, ClassifyDay(wednesday, false, pol))

	// Saturday and Sunday classify as weekend.
	saturday := calendar.Date{Year: 2025, Month: time.June, Day: 14}
	assert.Equal(t, policy.DayClassWeekend, ClassifyDay(saturday, false, pol))

	// The company rest day (Monday by default) classifies as weekend too.
	monday := calendar.Date{Year: 2025, Month: time.June, Day: 9}
	assert.Equal(t, policy.DayClassWeekend, ClassifyDay(monday, false, pol))

	// The holiday flag wins over the weekday.
	assert.Equal(t, policy.DayClassHoliday, ClassifyDay(wednesday, true, pol))
}

func TestHourlyEquivalent(t *testing.T) {
	emp := monthlyEmployee(3_460_000)
	assert.True(t, HourlyEquivalent(emp).Equal(decimal.NewFromInt(20_000)))

	hourly := decimal.NewFromInt(25_000)
	assert.True(t, HourlyEquivalent(employee.Employee{
		EmploymentType: employee.EmploymentHourly,
		HourlyRate:     &hourly,
	}).Equal(hourly))

	daily := decimal.NewFromInt(160_000)
	assert.True(t, HourlyEquivalent(employee.Employee{
		EmploymentType: employee.EmploymentDaily,
		DailyRate:      &daily,
	}).Equal(decimal.NewFromInt(20_000)))

	// No configured rate pays nothing rather than failing.
	assert.True(t, HourlyEquivalent(employee.Employee{
		EmploymentType: employee.EmploymentMonthly,
	}).IsZero())
}

func TestComputePay_WeekdayMultiplier(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()
	wednesday := calendar.Date{Year: 2025, Month: time.June, Day: 11}

	// 3,460,000 / 173 = 20,000 per hour; 2h at 1.5x = 60,000.
	pay := ComputePay(120, wednesday, false, monthlyEmployee(3_460_000), pol)
	assert.True(t, pay.Equal(decimal.NewFromInt(60_000)), "got %s", pay)
}

func TestComputePay_WeekendAndHolidayDoubles(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()
	saturday := calendar.Date{Year: 2025, Month: time.June, Day: 14}

	pay := ComputePay(60, saturday, false, monthlyEmployee(3_460_000), pol)
	assert.True(t, pay.Equal(decimal.NewFromInt(40_000)), "got %s", pay)

	holiday := ComputePay(60, saturday, true, monthlyEmployee(3_460_000), pol)
	assert.True(t, holiday.Equal(decimal.NewFromInt(40_000)), "got %s", holiday)
}

func TestComputePay_CapAndMinimum(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()
	maxHours := decimal.NewFromInt(3)
	pol.Weekday.MaxHours = &maxHours
	wednesday := calendar.Date{Year: 2025, Month: time.June, Day: 11}

	// 5h requested, capped at 3h: 20,000 x 3 x 1.5 = 90,000.
	pay := ComputePay(300, wednesday, false, monthlyEmployee(3_460_000), pol)
	assert.True(t, pay.Equal(decimal.NewFromInt(90_000)), "got %s", pay)

	pol.Weekday.MinimumPay = decimal.NewFromInt(100_000)
	floored := ComputePay(300, wednesday, false, monthlyEmployee(3_460_000), pol)
	assert.True(t, floored.Equal(decimal.NewFromInt(100_000)), "got %s", floored)
}

func TestComputePay_DisabledClassPaysZero(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()
	pol.Weekend.Enabled = false
	saturday := calendar.Date{Year: 2025, Month: time.June, Day: 14}

	assert.True(t, ComputePay(120, saturday, false, monthlyEmployee(3_460_000), pol).IsZero())
}

func TestComputePay_MissingRatePaysZero(t *testing.T) {
	pol := policy.DefaultOvertimePolicy()
	wednesday := calendar.Date{Year: 2025, Month: time.June, Day: 11}

	emp := employee.Employee{EmploymentType: employee.EmploymentHourly}
	assert.True(t, ComputePay(120, wednesday, false, emp, pol).IsZero())
}
