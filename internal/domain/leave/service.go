package leave

import (
	"context"
	"time"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
)

type LeaveService interface {
	// Leave types (owner-managed policy objects)
	CreateLeaveType(ctx context.Context, actor identity.Actor, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, actor identity.Actor, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, actor identity.Actor) ([]LeaveTypeResponse, error)

	// Balances: derived lazily per period, except in manual-quota mode.
	GetBalance(ctx context.Context, actor identity.Actor, employeeID, leaveTypeID string, year int, month time.Month) (BalanceResponse, error)
	SetManualQuota(ctx context.Context, actor identity.Actor, req SetManualQuotaRequest) (BalanceResponse, error)

	// Requests
	SubmitRequest(ctx context.Context, actor identity.Actor, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	UpdateRequest(ctx context.Context, actor identity.Actor, req UpdateLeaveRequest) (LeaveRequestResponse, error)
	DeleteRequest(ctx context.Context, actor identity.Actor, id string) error
	ApproveRequest(ctx context.Context, actor identity.Actor, id string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, actor identity.Actor, req RejectLeaveRequest) (LeaveRequestResponse, error)
	ListMyRequests(ctx context.Context, actor identity.Actor) ([]LeaveRequestResponse, error)
}
