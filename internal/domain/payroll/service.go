package payroll

import (
	"context"
	"errors"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
)

var ErrInvalidPeriod = errors.New("invalid payroll period")

type PayrollService interface {
	// CreateRun generates a run for the period with one item per active
	// employee, computed from settled attendance and approved overtime.
	CreateRun(ctx context.Context, actor identity.Actor, req CreateRunRequest) (RunResponse, error)

	GetRun(ctx context.Context, actor identity.Actor, id string) (RunResponse, error)
	ListRuns(ctx context.Context, actor identity.Actor) ([]RunResponse, error)

	// LockRun freezes a DRAFT run; MarkPaid settles a LOCKED run.
	LockRun(ctx context.Context, actor identity.Actor, id string) (RunResponse, error)
	MarkPaid(ctx context.Context, actor identity.Actor, id string) (RunResponse, error)

	// DeleteRun removes an unlocked run and its items.
	DeleteRun(ctx context.Context, actor identity.Actor, id string) error

	// OverrideItem edits manual line items and re-aggregates the run total.
	OverrideItem(ctx context.Context, actor identity.Actor, req OverrideItemRequest) (ItemResponse, error)

	// RecomputeItem rebuilds one item from current attendance/overtime while
	// its run is still mutable.
	RecomputeItem(ctx context.Context, actor identity.Actor, itemID string) (ItemResponse, error)
}
