package overtime

import (
	"context"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
)

type OvertimeService interface {
	SubmitRequest(ctx context.Context, actor identity.Actor, req SubmitOvertimeRequest) (OvertimeResponse, error)
	UpdateRequest(ctx context.Context, actor identity.Actor, req UpdateOvertimeRequest) (OvertimeResponse, error)
	DeleteRequest(ctx context.Context, actor identity.Actor, id string) error
	ApproveRequest(ctx context.Context, actor identity.Actor, id string) (OvertimeResponse, error)
	RejectRequest(ctx context.Context, actor identity.Actor, req RejectOvertimeRequest) (OvertimeResponse, error)
	ListMyRequests(ctx context.Context, actor identity.Actor) ([]OvertimeResponse, error)
}
