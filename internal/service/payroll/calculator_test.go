package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

func presentDay(minutes int) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		Status:              attendance.StatusPresent,
		WorkDurationMinutes: minutes,
	}
}

func TestComputeItem_MonthlyEmployee(t *testing.T) {
	base := decimal.NewFromInt(5_000_000)
	emp := employee.Employee{
		ID:                          "emp-1",
		EmploymentType:              employee.EmploymentMonthly,
		BaseSalary:                  &base,
		HealthInsuranceEnrolled:     true,
		EmploymentInsuranceEnrolled: true,
	}

	cfg := policy.DefaultPayrollConfig()
	cfg.TransportAllowance = decimal.NewFromInt(200_000)

	item := ComputeItem(Inputs{
		Employee:   emp,
		Config:     cfg,
		Attendance: []attendance.AttendanceRecord{presentDay(480), presentDay(480)},
	})

	assert.True(t, item.BasePay.Equal(base))
	assert.True(t, item.GrossPay.Equal(decimal.NewFromInt(5_200_000)), "got %s", item.GrossPay)

	// Health 1% and employment 2% of base pay.
	assert.True(t, item.EmployeeHealthContribution.Equal(decimal.NewFromInt(50_000)))
	assert.True(t, item.EmployeeEmploymentContribution.Equal(decimal.NewFromInt(100_000)))

	// Net round-trips: gross minus employee contributions and withholding.
	expectedNet := item.GrossPay.
		Sub(item.EmployeeHealthContribution).
		Sub(item.EmployeeEmploymentContribution).
		Sub(item.Withholding)
	assert.True(t, item.NetPay.Equal(expectedNet))
}

func TestComputeItem_HourlyCountsWorkedStatusesOnly(t *testing.T) {
	rate := decimal.NewFromInt(25_000)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentHourly,
		HourlyRate:     &rate,
	}

	records := []attendance.AttendanceRecord{
		presentDay(480),
		{Status: attendance.StatusHalfDay, WorkDurationMinutes: 180},
		{Status: attendance.StatusOnLeave},
		{Status: attendance.StatusAbsent},
	}

	item := ComputeItem(Inputs{
		Employee:   emp,
		Config:     policy.DefaultPayrollConfig(),
		Attendance: records,
	})

	// 480 + 180 minutes = 11 hours.
	assert.True(t, item.Breakdown.TotalHours.Equal(decimal.NewFromInt(11)))
	assert.True(t, item.BasePay.Equal(decimal.NewFromInt(275_000)), "got %s", item.BasePay)
	assert.Equal(t, 1, item.Breakdown.PresentDays)
	assert.Equal(t, 1, item.Breakdown.HalfDays)
}

func TestComputeItem_HourlyFallsBackToClockDiff(t *testing.T) {
	rate := decimal.NewFromInt(20_000)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentHourly,
		HourlyRate:     &rate,
	}

	in := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	out := in.Add(6 * time.Hour)
	record := attendance.AttendanceRecord{
		Status:   attendance.StatusPresent,
		ClockIn:  &in,
		ClockOut: &out,
	}

	item := ComputeItem(Inputs{
		Employee:   emp,
		Config:     policy.DefaultPayrollConfig(),
		Attendance: []attendance.AttendanceRecord{record},
	})

	assert.True(t, item.BasePay.Equal(decimal.NewFromInt(120_000)), "got %s", item.BasePay)
}

func TestComputeItem_DailyHalfDaysCountHalf(t *testing.T) {
	rate := decimal.NewFromInt(160_000)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentDaily,
		DailyRate:      &rate,
	}

	records := []attendance.AttendanceRecord{
		presentDay(480),
		presentDay(480),
		{Status: attendance.StatusHalfDay, WorkDurationMinutes: 200},
	}

	item := ComputeItem(Inputs{
		Employee:   emp,
		Config:     policy.DefaultPayrollConfig(),
		Attendance: records,
	})

	// 2.5 payable days.
	assert.True(t, item.BasePay.Equal(decimal.NewFromInt(400_000)), "got %s", item.BasePay)
}

func TestComputeItem_OvertimePayoutOnly(t *testing.T) {
	base := decimal.NewFromInt(3_460_000)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentMonthly,
		BaseSalary:     &base,
	}

	date := calendar.Date{Year: 2025, Month: time.June, Day: 11}
	claims := []overtime.OvertimeRequest{
		{Date: date, DurationMinutes: 120, Compensation: overtime.CompensationPayout, CalculatedAmount: decimal.NewFromInt(60_000)},
		{Date: date.AddDays(1), DurationMinutes: 60, Compensation: overtime.CompensationTimeOff, CalculatedAmount: decimal.NewFromInt(30_000)},
	}

	item := ComputeItem(Inputs{
		Employee: emp,
		Config:   policy.DefaultPayrollConfig(),
		Overtime: claims,
	})

	// Only the PAYOUT claim pays; hours still show both.
	assert.True(t, item.OvertimePay.Equal(decimal.NewFromInt(60_000)), "got %s", item.OvertimePay)
	assert.True(t, item.Breakdown.OvertimeHours.Equal(decimal.NewFromInt(3)))
}

func TestComputeItem_UnenrolledSkipsEmployeeContributionOnly(t *testing.T) {
	base := decimal.NewFromInt(1_000_000)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentMonthly,
		BaseSalary:     &base,
	}

	item := ComputeItem(Inputs{
		Employee: emp,
		Config:   policy.DefaultPayrollConfig(),
	})

	assert.True(t, item.EmployeeHealthContribution.IsZero())
	assert.True(t, item.EmployerHealthContribution.Equal(decimal.NewFromInt(40_000)))
	assert.True(t, item.EmployeeEmploymentContribution.IsZero())
	assert.True(t, item.EmployerEmploymentContribution.Equal(decimal.NewFromInt(37_000)))
}

func TestRederive_AfterOverride(t *testing.T) {
	base := decimal.NewFromInt(5_000_000)
	emp := employee.Employee{
		EmploymentType:          employee.EmploymentMonthly,
		BaseSalary:              &base,
		HealthInsuranceEnrolled: true,
	}

	item := ComputeItem(Inputs{Employee: emp, Config: policy.DefaultPayrollConfig()})

	item.Bonuses = decimal.NewFromInt(500_000)
	item.Deductions = decimal.NewFromInt(100_000)
	item.Withholding = decimal.NewFromInt(250_000)
	Rederive(&item)

	assert.True(t, item.GrossPay.Equal(decimal.NewFromInt(5_400_000)), "got %s", item.GrossPay)
	expectedNet := item.GrossPay.
		Sub(item.EmployeeHealthContribution).
		Sub(item.EmployeeEmploymentContribution).
		Sub(item.Withholding)
	assert.True(t, item.NetPay.Equal(expectedNet))
}
