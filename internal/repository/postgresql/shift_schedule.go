package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/schedule"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type shiftScheduleRepositoryImpl struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) schedule.ShiftScheduleRepository {
	return &shiftScheduleRepositoryImpl{db: db}
}

const shiftScheduleColumns = `
	id, employee_id, company_id, kind, day_of_week, date, start_time, end_time,
	created_at, updated_at
`

// Create implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepositoryImpl) Create(ctx context.Context, slot schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO shift_schedules (` + shiftScheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + shiftScheduleColumns

	var dayOfWeek *int
	if slot.DayOfWeek != nil {
		day := int(*slot.DayOfWeek)
		dayOfWeek = &day
	}
	var date *string
	if slot.Date != nil {
		d := slot.Date.String()
		date = &d
	}

	row := q.QueryRow(ctx, query,
		slot.ID, slot.EmployeeID, slot.CompanyID, slot.Kind,
		dayOfWeek, date, slot.StartTime, slot.EndTime,
		time.Now(),
	)

	created, err := scanShiftSchedule(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return schedule.ShiftSchedule{}, schedule.ErrSlotExists
		}
		return schedule.ShiftSchedule{}, err
	}
	return created, nil
}

// GetByID implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules
		WHERE id = $1 AND company_id = $2
	`

	slot, err := scanShiftSchedule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ShiftSchedule{}, schedule.ErrSlotNotFound
		}
		return schedule.ShiftSchedule{}, err
	}
	return slot, nil
}

// Delete implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM shift_schedules
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return schedule.ErrSlotNotFound
	}
	return nil
}

// ListByEmployee implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY kind, day_of_week, date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShiftSchedules(rows)
}

// ListForDate implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepositoryImpl) ListForDate(ctx context.Context, employeeID string, companyID string, date calendar.Date) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules
		WHERE employee_id = $1 AND company_id = $2
		  AND (
			(kind = 'DATE_SPECIFIC' AND date = $3)
			OR (kind = 'RECURRING' AND day_of_week = $4)
		  )
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, date.String(), int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShiftSchedules(rows)
}

func collectShiftSchedules(rows pgx.Rows) ([]schedule.ShiftSchedule, error) {
	var slots []schedule.ShiftSchedule
	for rows.Next() {
		slot, err := scanShiftSchedule(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func scanShiftSchedule(row pgx.Row) (schedule.ShiftSchedule, error) {
	var slot schedule.ShiftSchedule
	var dayOfWeek *int
	var date *time.Time
	err := row.Scan(
		&slot.ID, &slot.EmployeeID, &slot.CompanyID, &slot.Kind,
		&dayOfWeek, &date, &slot.StartTime, &slot.EndTime,
		&slot.CreatedAt, &slot.UpdatedAt,
	)
	if err != nil {
		return schedule.ShiftSchedule{}, err
	}
	if dayOfWeek != nil {
		day := time.Weekday(*dayOfWeek)
		slot.DayOfWeek = &day
	}
	if date != nil {
		d := calendar.DateOf(*date)
		slot.Date = &d
	}
	return slot, nil
}
