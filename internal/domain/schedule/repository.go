package schedule

import (
	"context"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type ShiftScheduleRepository interface {
	Create(ctx context.Context, slot ShiftSchedule) (ShiftSchedule, error)
	GetByID(ctx context.Context, id string, companyID string) (ShiftSchedule, error)
	Delete(ctx context.Context, id string, companyID string) error
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]ShiftSchedule, error)

	// ListForDate returns every slot covering the business day: date-specific
	// slots for that date plus recurring slots for its weekday.
	ListForDate(ctx context.Context, employeeID string, companyID string, date calendar.Date) ([]ShiftSchedule, error)
}
