package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type_id, company_id,
	start_date, end_date, days, reason, attachment_url,
	status, rejection_reason, decided_by, decided_at,
	created_at, updated_at
`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_requests (` + leaveRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING ` + leaveRequestColumns

	row := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveTypeID, request.CompanyID,
		request.StartDate.String(), request.EndDate.String(), request.Days,
		request.Reason, request.AttachmentURL,
		request.Status, request.RejectionReason, request.DecidedBy, request.DecidedAt,
		time.Now(),
	)
	return scanLeaveRequest(row)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1 AND company_id = $2
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET start_date = $3, end_date = $4, days = $5, reason = $6, attachment_url = $7,
			status = $8, rejection_reason = $9, decided_by = $10, decided_at = $11,
			updated_at = $12
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.CompanyID,
		request.StartDate.String(), request.EndDate.String(), request.Days,
		request.Reason, request.AttachmentURL,
		request.Status, request.RejectionReason, request.DecidedBy, request.DecidedAt,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_requests
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// HasOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end calendar.Date, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3 AND end_date >= $2
			  AND ($4 = '' OR id != $4)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, start.String(), end.String(), excludeID).Scan(&exists)
	return exists, err
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	var start, end time.Time
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.LeaveTypeID, &request.CompanyID,
		&start, &end, &request.Days, &request.Reason, &request.AttachmentURL,
		&request.Status, &request.RejectionReason, &request.DecidedBy, &request.DecidedAt,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	request.StartDate = calendar.DateOf(start)
	request.EndDate = calendar.DateOf(end)
	return request, nil
}
