package policy

import (
	"context"
	"encoding/json"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
)

// PolicyService resolves typed policies for a tenant. Absent rows fall back
// to engine defaults; malformed rows fail the calling operation.
type PolicyService interface {
	AttendanceRules(ctx context.Context, companyID string) (AttendanceRules, error)
	OvertimePolicy(ctx context.Context, companyID string) (OvertimePolicy, error)
	LeavePolicy(ctx context.Context, companyID string) (LeavePolicy, error)
	PayrollConfig(ctx context.Context, companyID string) (PayrollConfig, error)

	// Update stores a new version of a policy blob after validating it parses.
	Update(ctx context.Context, actor identity.Actor, policyType PolicyType, config json.RawMessage) (Policy, error)
}
