package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
	auditor *audit.Recorder
}

func NewPolicyService(policyRepository policy.PolicyRepository, auditor *audit.Recorder) *PolicyServiceImpl {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepository,
		auditor:          auditor,
	}
}

// AttendanceRules implements policy.PolicyService.
func (s *PolicyServiceImpl) AttendanceRules(ctx context.Context, companyID string) (policy.AttendanceRules, error) {
	raw, err := s.activeConfig(ctx, companyID, policy.TypeAttendanceRules)
	if err != nil {
		return policy.AttendanceRules{}, err
	}
	return policy.ParseAttendanceRules(raw)
}

// OvertimePolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) OvertimePolicy(ctx context.Context, companyID string) (policy.OvertimePolicy, error) {
	raw, err := s.activeConfig(ctx, companyID, policy.TypeOvertimePolicy)
	if err != nil {
		return policy.OvertimePolicy{}, err
	}
	return policy.ParseOvertimePolicy(raw)
}

// LeavePolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) LeavePolicy(ctx context.Context, companyID string) (policy.LeavePolicy, error) {
	raw, err := s.activeConfig(ctx, companyID, policy.TypeLeavePolicy)
	if err != nil {
		return policy.LeavePolicy{}, err
	}
	return policy.ParseLeavePolicy(raw)
}

// PayrollConfig implements policy.PolicyService.
func (s *PolicyServiceImpl) PayrollConfig(ctx context.Context, companyID string) (policy.PayrollConfig, error) {
	raw, err := s.activeConfig(ctx, companyID, policy.TypePayrollConfig)
	if err != nil {
		return policy.PayrollConfig{}, err
	}
	return policy.ParsePayrollConfig(raw)
}

// Update implements policy.PolicyService. The blob must parse as its declared
// type before it is stored as a new version.
func (s *PolicyServiceImpl) Update(ctx context.Context, actor identity.Actor, policyType policy.PolicyType, config json.RawMessage) (policy.Policy, error) {
	if !actor.IsOwner() {
		return policy.Policy{}, policy.ErrOwnerOnly
	}

	var err error
	switch policyType {
	case policy.TypeAttendanceRules:
		_, err = policy.ParseAttendanceRules(config)
	case policy.TypeOvertimePolicy:
		_, err = policy.ParseOvertimePolicy(config)
	case policy.TypeLeavePolicy:
		_, err = policy.ParseLeavePolicy(config)
	case policy.TypePayrollConfig:
		_, err = policy.ParsePayrollConfig(config)
	default:
		return policy.Policy{}, policy.ErrUnknownType
	}
	if err != nil {
		return policy.Policy{}, err
	}

	created, err := s.PolicyRepository.CreateNextVersion(ctx, actor.CompanyID, policyType, config)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("store policy version: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "policy.updated",
		EntityType: "policy",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return created, nil
}

// activeConfig returns the stored blob of the highest active version, or nil
// when the company has never configured the type.
func (s *PolicyServiceImpl) activeConfig(ctx context.Context, companyID string, policyType policy.PolicyType) (json.RawMessage, error) {
	row, err := s.PolicyRepository.GetActive(ctx, companyID, policyType)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active policy: %w", err)
	}
	return row.Config, nil
}
