package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

func accruingType() leave.LeaveType {
	maxBalance := decimal.NewFromInt(12)
	return leave.LeaveType{
		ID:             "annual",
		AccrualEnabled: true,
		AccrualRate:    decimal.NewFromInt(1),
		MaxBalance:     &maxBalance,
	}
}

func TestCountDays_SkipsExcludedWeekday(t *testing.T) {
	pol := policy.DefaultLeavePolicy()

	// Monday 2025-06-09 through Monday 2025-06-16 spans 8 calendar days with
	// one Sunday in between.
	start := calendar.Date{Year: 2025, Month: time.June, Day: 9}
	end := calendar.Date{Year: 2025, Month: time.June, Day: 16}
	assert.True(t, CountDays(start, end, pol).Equal(decimal.NewFromInt(7)))

	// A single non-excluded day counts as one.
	assert.True(t, CountDays(start, start, pol).Equal(decimal.NewFromInt(1)))

	// A lone Sunday counts as zero.
	sunday := calendar.Date{Year: 2025, Month: time.June, Day: 15}
	assert.True(t, CountDays(sunday, sunday, pol).IsZero())

	// Reversed ranges count zero.
	assert.True(t, CountDays(end, start, pol).IsZero())
}

func TestComputeBalance_MonthlyAccrual(t *testing.T) {
	prev := &leave.LeaveBalance{
		PeriodYear:  2025,
		PeriodMonth: time.May,
		Balance:     decimal.NewFromInt(5),
	}

	row := ComputeBalance(AccrualInput{
		Type:        accruingType(),
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.June,
		Previous:    prev,
		Used:        decimal.Zero,
	})

	assert.True(t, row.Balance.Equal(decimal.NewFromInt(6)), "got %s", row.Balance)
	assert.True(t, row.Accrued.Equal(decimal.NewFromInt(1)))
}

func TestComputeBalance_CapsAtMaxBalance(t *testing.T) {
	prev := &leave.LeaveBalance{
		PeriodYear:  2025,
		PeriodMonth: time.May,
		Balance:     decimal.NewFromInt(12),
	}

	row := ComputeBalance(AccrualInput{
		Type:        accruingType(),
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.June,
		Previous:    prev,
		Used:        decimal.Zero,
	})

	assert.True(t, row.Balance.Equal(decimal.NewFromInt(12)), "got %s", row.Balance)
}

func TestComputeBalance_ExpiryLapsesWholeBalance(t *testing.T) {
	lt := accruingType()
	lt.ExpiresAfterMonths = 6

	prev := &leave.LeaveBalance{
		PeriodYear:  2024,
		PeriodMonth: time.November,
		Balance:     decimal.NewFromInt(4),
	}

	row := ComputeBalance(AccrualInput{
		Type:        lt,
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.May,
		Previous:    prev,
		Used:        decimal.Zero,
	})

	assert.True(t, row.Expired.Equal(decimal.NewFromInt(4)))
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(1)), "got %s", row.Balance)
}

func TestComputeBalance_CarryoverMonth(t *testing.T) {
	lt := accruingType()
	lt.CarryoverAllowed = true
	carryMax := decimal.NewFromInt(6)
	lt.CarryoverMax = &carryMax

	reference := &leave.LeaveBalance{
		PeriodYear:  2024,
		PeriodMonth: time.December,
		Balance:     decimal.NewFromInt(9),
	}

	row := ComputeBalance(AccrualInput{
		Type:        lt,
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.January,
		Previous:    reference,
		Reference:   reference,
		Used:        decimal.Zero,
	})

	// Carryover is capped at 6; the December balance does not roll on its own.
	assert.True(t, row.CarriedOver.Equal(decimal.NewFromInt(6)))
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(7)), "got %s", row.Balance)
}

func TestComputeBalance_CarryoverDisallowedResetsYear(t *testing.T) {
	reference := &leave.LeaveBalance{
		PeriodYear:  2024,
		PeriodMonth: time.December,
		Balance:     decimal.NewFromInt(9),
	}

	row := ComputeBalance(AccrualInput{
		Type:        accruingType(),
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.January,
		Previous:    reference,
		Reference:   reference,
		Used:        decimal.Zero,
	})

	assert.True(t, row.CarriedOver.IsZero())
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(1)), "got %s", row.Balance)
}

func TestComputeBalance_AccrualDisabled(t *testing.T) {
	maxBalance := decimal.NewFromInt(12)
	lt := leave.LeaveType{MaxBalance: &maxBalance}

	row := ComputeBalance(AccrualInput{
		Type:        lt,
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.June,
		Used:        decimal.NewFromInt(3),
	})
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(9)), "got %s", row.Balance)

	// Without a cap the type is effectively unlimited.
	unlimited := ComputeBalance(AccrualInput{
		Type:        leave.LeaveType{},
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.June,
		Used:        decimal.Zero,
	})
	assert.True(t, unlimited.Balance.Equal(leave.UnlimitedBalance))
}

func TestComputeBalance_Deterministic(t *testing.T) {
	in := AccrualInput{
		Type:        accruingType(),
		Policy:      policy.DefaultLeavePolicy(),
		PeriodYear:  2025,
		PeriodMonth: time.June,
		Previous: &leave.LeaveBalance{
			PeriodYear:  2025,
			PeriodMonth: time.May,
			Balance:     decimal.NewFromInt(5),
		},
		Used: decimal.NewFromInt(2),
	}

	first := ComputeBalance(in)
	second := ComputeBalance(in)
	assert.True(t, first.Balance.Equal(second.Balance))
	assert.True(t, first.Accrued.Equal(second.Accrued))
	assert.True(t, first.Expired.Equal(second.Expired))
}
