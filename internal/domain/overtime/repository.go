package overtime

import (
	"context"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

// OvertimeRepository defines data access for overtime requests. A partial
// unique index over (employee_id, date) where status in (PENDING, APPROVED)
// is the duplicate-claim lock.
type OvertimeRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (OvertimeRequest, error)
	Update(ctx context.Context, request OvertimeRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]OvertimeRequest, error)

	// ListApprovedForPeriod returns APPROVED requests dated in the payroll
	// period, all compensation types included.
	ListApprovedForPeriod(ctx context.Context, employeeID string, companyID string, year int, month time.Month) ([]OvertimeRequest, error)

	// HasActiveForDate reports whether a PENDING or APPROVED request exists
	// for the employee on the date.
	HasActiveForDate(ctx context.Context, employeeID string, date calendar.Date) (bool, error)
}
