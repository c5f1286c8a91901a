package attendance

import (
	"context"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, actor identity.Actor, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, actor identity.Actor, req ClockOutRequest) (AttendanceResponse, error)
	GetRecord(ctx context.Context, actor identity.Actor, id string) (AttendanceResponse, error)

	SubmitAdjustment(ctx context.Context, actor identity.Actor, req SubmitAdjustmentRequest) (AdjustmentResponse, error)
	UpdateAdjustment(ctx context.Context, actor identity.Actor, req UpdateAdjustmentRequest) (AdjustmentResponse, error)
	DeleteAdjustment(ctx context.Context, actor identity.Actor, id string) error
	ResubmitAdjustment(ctx context.Context, actor identity.Actor, req SubmitAdjustmentRequest) (AdjustmentResponse, error)
	ApproveAdjustment(ctx context.Context, actor identity.Actor, id string) (AdjustmentResponse, error)
	RejectAdjustment(ctx context.Context, actor identity.Actor, req RejectAdjustmentRequest) (AdjustmentResponse, error)
}
