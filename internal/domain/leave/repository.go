package leave

import (
	"context"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveType, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
}

type LeaveBalanceRepository interface {
	// Get returns the stored row for the period, or ErrBalanceNotFound.
	Get(ctx context.Context, employeeID, leaveTypeID string, year int, month time.Month) (LeaveBalance, error)

	// GetLatestBefore returns the most recent stored row strictly before the
	// period, or ErrBalanceNotFound. Derivation may skip months, so the latest
	// row can be arbitrarily old.
	GetLatestBefore(ctx context.Context, employeeID, leaveTypeID string, year int, month time.Month) (LeaveBalance, error)

	// Upsert writes the row keyed by (employee, leave type, year, month).
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LeaveRequest, error)

	// HasOverlapping reports whether any PENDING or APPROVED request of the
	// employee intersects [start, end], excluding the request with excludeID
	// when non-empty.
	HasOverlapping(ctx context.Context, employeeID string, start, end calendar.Date, excludeID string) (bool, error)
}
