package attendance

import (
	"context"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, date) unique constraint is the concurrency control for
// duplicate clock-ins: a racing create fails with ErrRecordConflict.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	GetByID(ctx context.Context, id string, companyID string) (AttendanceRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date, companyID string) (AttendanceRecord, error)
	Update(ctx context.Context, record AttendanceRecord) error

	// ListForPeriod returns the employee's records for a payroll period.
	ListForPeriod(ctx context.Context, employeeID string, companyID string, year int, month time.Month) ([]AttendanceRecord, error)
}

// AdjustmentRepository defines data access for adjustment requests. A partial
// unique index over (attendance_record_id) where status in
// (PENDING, APPROVED) enforces the single-active-request invariant.
type AdjustmentRepository interface {
	Create(ctx context.Context, request AdjustmentRequest) (AdjustmentRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (AdjustmentRequest, error)
	GetActiveByRecord(ctx context.Context, recordID string) (AdjustmentRequest, error)

	// GetLatestByRecord returns the newest request for the record regardless
	// of status. Resubmission overwrites a rejected row in place.
	GetLatestByRecord(ctx context.Context, recordID string) (AdjustmentRequest, error)
	Update(ctx context.Context, request AdjustmentRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}
