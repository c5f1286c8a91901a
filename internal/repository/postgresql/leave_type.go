package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `
	id, company_id, name, is_paid, max_balance,
	accrual_enabled, accrual_rate, carryover_allowed, carryover_max,
	expires_after_months, requires_attachment, is_active,
	created_at, updated_at
`

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (` + leaveTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + leaveTypeColumns

	row := q.QueryRow(ctx, query,
		leaveType.ID, leaveType.CompanyID, leaveType.Name, leaveType.IsPaid, leaveType.MaxBalance,
		leaveType.AccrualEnabled, leaveType.AccrualRate, leaveType.CarryoverAllowed, leaveType.CarryoverMax,
		leaveType.ExpiresAfterMonths, leaveType.RequiresAttachment, leaveType.IsActive,
		time.Now(),
	)
	return scanLeaveType(row)
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE id = $1 AND company_id = $2
	`

	leaveType, err := scanLeaveType(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return leaveType, nil
}

// ListByCompany implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE company_id = $1 AND (NOT $2 OR is_active = true)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		leaveType, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, leaveType)
	}
	return types, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, leaveType leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $3, is_paid = $4, max_balance = $5,
			accrual_enabled = $6, accrual_rate = $7,
			carryover_allowed = $8, carryover_max = $9,
			expires_after_months = $10, requires_attachment = $11, is_active = $12,
			updated_at = $13
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		leaveType.ID, leaveType.CompanyID,
		leaveType.Name, leaveType.IsPaid, leaveType.MaxBalance,
		leaveType.AccrualEnabled, leaveType.AccrualRate,
		leaveType.CarryoverAllowed, leaveType.CarryoverMax,
		leaveType.ExpiresAfterMonths, leaveType.RequiresAttachment, leaveType.IsActive,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var leaveType leave.LeaveType
	err := row.Scan(
		&leaveType.ID, &leaveType.CompanyID, &leaveType.Name, &leaveType.IsPaid, &leaveType.MaxBalance,
		&leaveType.AccrualEnabled, &leaveType.AccrualRate, &leaveType.CarryoverAllowed, &leaveType.CarryoverMax,
		&leaveType.ExpiresAfterMonths, &leaveType.RequiresAttachment, &leaveType.IsActive,
		&leaveType.CreatedAt, &leaveType.UpdatedAt,
	)
	return leaveType, err
}
