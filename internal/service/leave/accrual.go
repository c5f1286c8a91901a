package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

// CountDays counts the leave days consumed by [start, end], skipping the
// company's excluded weekday. A reversed range counts zero.
func CountDays(start, end calendar.Date, pol policy.LeavePolicy) decimal.Decimal {
	if end.Before(start) {
		return decimal.Zero
	}
	days := int64(0)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if d.Weekday() == pol.ExcludedWeekday {
			continue
		}
		days++
	}
	return decimal.NewFromInt(days)
}

// AccrualInput carries everything ComputeBalance needs for one ledger period.
// Previous is the last stored row before the period; Reference is the prior
// year's reference-month row, consulted only in the carryover month.
type AccrualInput struct {
	Type   leave.LeaveType
	Policy policy.LeavePolicy

	PeriodYear  int
	PeriodMonth time.Month

	Previous  *leave.LeaveBalance
	Reference *leave.LeaveBalance

	Used decimal.Decimal
}

// ComputeBalance derives the ledger row for one period. Balance is what
// remains spendable after Used. The function is pure; deriving the same
// period twice yields the same row.
func ComputeBalance(in AccrualInput) leave.LeaveBalance {
	out := leave.LeaveBalance{
		LeaveTypeID: in.Type.ID,
		CompanyID:   in.Type.CompanyID,
		PeriodYear:  in.PeriodYear,
		PeriodMonth: in.PeriodMonth,
		Used:        in.Used,
		Accrued:     decimal.Zero,
		CarriedOver: decimal.Zero,
		Expired:     decimal.Zero,
	}

	// Accrual-disabled types run against a flat quota, or the unlimited
	// sentinel when no cap is configured.
	if !in.Type.AccrualEnabled {
		if in.Type.MaxBalance == nil {
			out.Balance = leave.UnlimitedBalance
			return out
		}
		out.Balance = floorZero(in.Type.MaxBalance.Sub(in.Used))
		return out
	}

	out.Accrued = in.Type.AccrualRate

	prev := decimal.Zero
	if in.Previous != nil {
		prev = in.Previous.Balance
	}

	// An aged-out balance lapses whole, not pro-rata.
	if in.Type.ExpiresAfterMonths > 0 && in.Previous != nil {
		elapsed := calendar.MonthsBetween(in.Previous.PeriodYear, in.Previous.PeriodMonth, in.PeriodYear, in.PeriodMonth)
		if elapsed >= in.Type.ExpiresAfterMonths {
			out.Expired = prev
			prev = decimal.Zero
		}
	}

	var balance decimal.Decimal
	if in.PeriodMonth == in.Policy.CarryoverMonth {
		// Year boundary: the running balance does not roll over by itself.
		// Only the capped carryover from the reference month survives.
		carried := decimal.Zero
		if in.Type.CarryoverAllowed && in.Reference != nil {
			carried = floorZero(in.Reference.Balance)
			if in.Type.CarryoverMax != nil && carried.GreaterThan(*in.Type.CarryoverMax) {
				carried = *in.Type.CarryoverMax
			}
		}
		out.CarriedOver = carried
		balance = out.Accrued.Add(carried)
	} else {
		balance = prev.Add(out.Accrued)
	}

	if in.Type.MaxBalance != nil && balance.GreaterThan(*in.Type.MaxBalance) {
		balance = *in.Type.MaxBalance
	}

	out.Balance = floorZero(balance.Sub(in.Used))
	return out
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
