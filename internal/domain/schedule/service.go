package schedule

import (
	"context"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type ScheduleService interface {
	// HasShift reports whether the employee has any slot on the business day.
	HasShift(ctx context.Context, employeeID, companyID string, date calendar.Date) (bool, error)

	// WithinSchedule reports whether the instant falls inside any slot window
	// on its business day.
	WithinSchedule(ctx context.Context, employeeID, companyID string, instant time.Time) (bool, error)

	// EarliestStart returns the start instant of the earliest slot window on
	// the business day, or nil when the employee has no slot that day.
	EarliestStart(ctx context.Context, employeeID, companyID string, date calendar.Date) (*time.Time, error)

	CreateSlot(ctx context.Context, actor identity.Actor, req CreateSlotRequest) (SlotResponse, error)
	DeleteSlot(ctx context.Context, actor identity.Actor, id string) error
	ListEmployeeSlots(ctx context.Context, actor identity.Actor, employeeID string) ([]SlotResponse, error)
}
