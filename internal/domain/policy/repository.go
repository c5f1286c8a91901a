package policy

import (
	"context"
	"encoding/json"
)

type PolicyRepository interface {
	// GetActive returns the highest-version active policy row of the given
	// type, or ErrPolicyNotFound when no active row exists.
	GetActive(ctx context.Context, companyID string, policyType PolicyType) (Policy, error)

	// CreateNextVersion stores config as a new active row with version one
	// above the current maximum, deactivating older rows of the same type.
	CreateNextVersion(ctx context.Context, companyID string, policyType PolicyType, config json.RawMessage) (Policy, error)
}
