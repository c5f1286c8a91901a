package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `
	id, employee_id, company_id, date, duration_minutes, reason,
	compensation, is_holiday, calculated_amount,
	status, rejection_reason, decided_by, decided_at,
	created_at, updated_at
`

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO overtime_requests (` + overtimeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING ` + overtimeColumns

	row := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.CompanyID,
		request.Date.String(), request.DurationMinutes, request.Reason,
		request.Compensation, request.IsHoliday, request.CalculatedAmount,
		request.Status, request.RejectionReason, request.DecidedBy, request.DecidedAt,
		time.Now(),
	)

	created, err := scanOvertimeRequest(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return overtime.OvertimeRequest{}, overtime.ErrDuplicateRequest
		}
		return overtime.OvertimeRequest{}, err
	}
	return created, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE id = $1 AND company_id = $2
	`

	request, err := scanOvertimeRequest(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrRequestNotFound
		}
		return overtime.OvertimeRequest{}, err
	}
	return request, nil
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Update(ctx context.Context, request overtime.OvertimeRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE overtime_requests
		SET duration_minutes = $3, reason = $4, compensation = $5, is_holiday = $6,
			calculated_amount = $7, status = $8, rejection_reason = $9,
			decided_by = $10, decided_at = $11, updated_at = $12
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.CompanyID,
		request.DurationMinutes, request.Reason, request.Compensation, request.IsHoliday,
		request.CalculatedAmount, request.Status, request.RejectionReason,
		request.DecidedBy, request.DecidedAt, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return overtime.ErrRequestNotFound
	}
	return nil
}

// Delete implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM overtime_requests
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return overtime.ErrRequestNotFound
	}
	return nil
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOvertimeRequests(rows)
}

// ListApprovedForPeriod implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListApprovedForPeriod(ctx context.Context, employeeID string, companyID string, year int, month time.Month) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE employee_id = $1 AND company_id = $2 AND status = 'APPROVED'
		  AND date_part('year', date) = $3 AND date_part('month', date) = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOvertimeRequests(rows)
}

// HasActiveForDate implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) HasActiveForDate(ctx context.Context, employeeID string, date calendar.Date) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM overtime_requests
			WHERE employee_id = $1 AND date = $2 AND status IN ('PENDING', 'APPROVED')
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date.String()).Scan(&exists)
	return exists, err
}

func collectOvertimeRequests(rows pgx.Rows) ([]overtime.OvertimeRequest, error) {
	var requests []overtime.OvertimeRequest
	for rows.Next() {
		request, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var request overtime.OvertimeRequest
	var date time.Time
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.CompanyID,
		&date, &request.DurationMinutes, &request.Reason,
		&request.Compensation, &request.IsHoliday, &request.CalculatedAmount,
		&request.Status, &request.RejectionReason, &request.DecidedBy, &request.DecidedAt,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	request.Date = calendar.DateOf(date)
	return request, nil
}
