package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, date,
	clock_in, clock_out,
	clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude,
	work_duration_minutes, status, notes, unscheduled_overtime, adjustment_request_id,
	created_at, updated_at
`

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendance_records (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING ` + attendanceColumns

	now := time.Now()
	row := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.CompanyID, record.Date.String(),
		record.ClockIn, record.ClockOut,
		record.ClockInLatitude, record.ClockInLongitude, record.ClockOutLatitude, record.ClockOutLongitude,
		record.WorkDurationMinutes, record.Status, record.Notes, record.UnscheduledOvertime, record.AdjustmentRequestID,
		now,
	)

	created, err := scanAttendanceRecord(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordConflict
		}
		return attendance.AttendanceRecord{}, err
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1 AND company_id = $2
	`

	record, err := scanAttendanceRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date, companyID string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	record, err := scanAttendanceRecord(q.QueryRow(ctx, query, employeeID, date.String(), companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendance_records
		SET clock_in = $3, clock_out = $4,
			clock_in_latitude = $5, clock_in_longitude = $6,
			clock_out_latitude = $7, clock_out_longitude = $8,
			work_duration_minutes = $9, status = $10, notes = $11,
			unscheduled_overtime = $12, adjustment_request_id = $13,
			updated_at = $14
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.CompanyID,
		record.ClockIn, record.ClockOut,
		record.ClockInLatitude, record.ClockInLongitude,
		record.ClockOutLatitude, record.ClockOutLongitude,
		record.WorkDurationMinutes, record.Status, record.Notes,
		record.UnscheduledOvertime, record.AdjustmentRequestID,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListForPeriod(ctx context.Context, employeeID string, companyID string, year int, month time.Month) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND company_id = $2
		  AND date_part('year', date) = $3 AND date_part('month', date) = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanAttendanceRecord(row pgx.Row) (attendance.AttendanceRecord, error) {
	var record attendance.AttendanceRecord
	var date time.Time
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.CompanyID, &date,
		&record.ClockIn, &record.ClockOut,
		&record.ClockInLatitude, &record.ClockInLongitude, &record.ClockOutLatitude, &record.ClockOutLongitude,
		&record.WorkDurationMinutes, &record.Status, &record.Notes, &record.UnscheduledOvertime, &record.AdjustmentRequestID,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	record.Date = calendar.DateOf(date)
	return record, nil
}

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) attendance.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `
	id, attendance_record_id, requester_id, company_id,
	proposed_clock_in, proposed_clock_out, reason,
	status, rejection_reason, decided_by, decided_at,
	created_at, updated_at
`

// Create implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, request attendance.AdjustmentRequest) (attendance.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO adjustment_requests (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING ` + adjustmentColumns

	row := q.QueryRow(ctx, query,
		request.ID, request.AttendanceRecordID, request.RequesterID, request.CompanyID,
		request.ProposedClockIn, request.ProposedClockOut, request.Reason,
		request.Status, request.RejectionReason, request.DecidedBy, request.DecidedAt,
		time.Now(),
	)

	created, err := scanAdjustmentRequest(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.AdjustmentRequest{}, attendance.ErrActiveAdjustmentExists
		}
		return attendance.AdjustmentRequest{}, err
	}
	return created, nil
}

// GetByID implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests
		WHERE id = $1 AND company_id = $2
	`

	request, err := scanAdjustmentRequest(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
		}
		return attendance.AdjustmentRequest{}, err
	}
	return request, nil
}

// GetActiveByRecord implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetActiveByRecord(ctx context.Context, recordID string) (attendance.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests
		WHERE attendance_record_id = $1 AND status IN ('PENDING', 'APPROVED')
	`

	request, err := scanAdjustmentRequest(q.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
		}
		return attendance.AdjustmentRequest{}, err
	}
	return request, nil
}

// GetLatestByRecord implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetLatestByRecord(ctx context.Context, recordID string) (attendance.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests
		WHERE attendance_record_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	request, err := scanAdjustmentRequest(q.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
		}
		return attendance.AdjustmentRequest{}, err
	}
	return request, nil
}

// Update implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Update(ctx context.Context, request attendance.AdjustmentRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE adjustment_requests
		SET proposed_clock_in = $3, proposed_clock_out = $4, reason = $5,
			status = $6, rejection_reason = $7, decided_by = $8, decided_at = $9,
			updated_at = $10
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.CompanyID,
		request.ProposedClockIn, request.ProposedClockOut, request.Reason,
		request.Status, request.RejectionReason, request.DecidedBy, request.DecidedAt,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAdjustmentNotFound
	}
	return nil
}

// Delete implements attendance.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM adjustment_requests
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAdjustmentNotFound
	}
	return nil
}

func scanAdjustmentRequest(row pgx.Row) (attendance.AdjustmentRequest, error) {
	var request attendance.AdjustmentRequest
	err := row.Scan(
		&request.ID, &request.AttendanceRecordID, &request.RequesterID, &request.CompanyID,
		&request.ProposedClockIn, &request.ProposedClockOut, &request.Reason,
		&request.Status, &request.RejectionReason, &request.DecidedBy, &request.DecidedAt,
		&request.CreatedAt, &request.UpdatedAt,
	)
	return request, err
}
