package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	id, employee_id, leave_type_id, company_id, period_year, period_month,
	balance, accrued, used, carried_over, expired,
	created_at, updated_at
`

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID string, year int, month time.Month) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND period_year = $3 AND period_month = $4
	`

	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveTypeID, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetLatestBefore implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetLatestBefore(ctx context.Context, employeeID, leaveTypeID string, year int, month time.Month) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2
		  AND (period_year < $3 OR (period_year = $3 AND period_month < $4))
		ORDER BY period_year DESC, period_month DESC
		LIMIT 1
	`

	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveTypeID, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// Upsert implements leave.LeaveBalanceRepository. The row is keyed by
// (employee_id, leave_type_id, period_year, period_month); a concurrent
// derivation of the same period lands on the same row.
func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_balances (` + leaveBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		ON CONFLICT (employee_id, leave_type_id, period_year, period_month)
		DO UPDATE SET
			balance = EXCLUDED.balance,
			accrued = EXCLUDED.accrued,
			used = EXCLUDED.used,
			carried_over = EXCLUDED.carried_over,
			expired = EXCLUDED.expired,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + leaveBalanceColumns

	row := q.QueryRow(ctx, query,
		balance.ID, balance.EmployeeID, balance.LeaveTypeID, balance.CompanyID,
		balance.PeriodYear, int(balance.PeriodMonth),
		balance.Balance, balance.Accrued, balance.Used, balance.CarriedOver, balance.Expired,
		time.Now(),
	)
	return scanLeaveBalance(row)
}

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	var month int
	err := row.Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.CompanyID,
		&balance.PeriodYear, &month,
		&balance.Balance, &balance.Accrued, &balance.Used, &balance.CarriedOver, &balance.Expired,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	balance.PeriodMonth = time.Month(month)
	return balance, nil
}
