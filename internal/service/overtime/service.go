package overtime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	employee.EmployeeRepository

	policies   policy.PolicyService
	normalizer *calendar.Normalizer
	auditor    *audit.Recorder
}

func NewOvertimeService(
	overtimeRepository overtime.OvertimeRepository,
	employeeRepository employee.EmployeeRepository,
	policyService policy.PolicyService,
	normalizer *calendar.Normalizer,
	auditor *audit.Recorder,
) *OvertimeServiceImpl {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepository,
		EmployeeRepository: employeeRepository,
		policies:           policyService,
		normalizer:         normalizer,
		auditor:            auditor,
	}
}

// SubmitRequest implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) SubmitRequest(ctx context.Context, actor identity.Actor, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if req.DurationMinutes <= 0 {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidDuration
	}
	if req.Reason == "" {
		return overtime.OvertimeResponse{}, attendance.ErrReasonRequired
	}
	compensation, err := parseCompensation(req.Compensation)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	date, err := s.normalizer.NormalizeString(req.Date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("%w: %v", overtime.ErrInvalidDate, err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !emp.IsActive {
		return overtime.OvertimeResponse{}, employee.ErrEmployeeInactive
	}

	active, err := s.OvertimeRepository.HasActiveForDate(ctx, emp.ID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("check active overtime: %w", err)
	}
	if active {
		return overtime.OvertimeResponse{}, overtime.ErrDuplicateRequest
	}

	request := overtime.OvertimeRequest{
		ID:               uuid.NewString(),
		EmployeeID:       emp.ID,
		CompanyID:        emp.CompanyID,
		Date:             date,
		DurationMinutes:  req.DurationMinutes,
		Reason:           req.Reason,
		Compensation:     compensation,
		IsHoliday:        req.IsHoliday,
		CalculatedAmount: decimal.Zero,
		Status:           approval.StatusPending,
	}

	created, err := s.OvertimeRepository.Create(ctx, request)
	if err != nil {
		if errors.Is(err, overtime.ErrDuplicateRequest) {
			return overtime.OvertimeResponse{}, overtime.ErrDuplicateRequest
		}
		return overtime.OvertimeResponse{}, fmt.Errorf("create overtime request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "overtime.submitted",
		EntityType: "overtime_request",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toOvertimeResponse(created), nil
}

// UpdateRequest implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) UpdateRequest(ctx context.Context, actor identity.Actor, req overtime.UpdateOvertimeRequest) (overtime.OvertimeResponse, error) {
	request, err := s.OvertimeRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.EmployeeID, request.Status); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	before := request

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return overtime.OvertimeResponse{}, overtime.ErrInvalidDuration
		}
		request.DurationMinutes = *req.DurationMinutes
	}
	if req.Reason != nil {
		if *req.Reason == "" {
			return overtime.OvertimeResponse{}, attendance.ErrReasonRequired
		}
		request.Reason = *req.Reason
	}
	if req.Compensation != nil {
		compensation, err := parseCompensation(*req.Compensation)
		if err != nil {
			return overtime.OvertimeResponse{}, err
		}
		request.Compensation = compensation
	}

	if err := s.OvertimeRepository.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("update overtime request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "overtime.updated",
		EntityType: "overtime_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toOvertimeResponse(request), nil
}

// DeleteRequest implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteRequest(ctx context.Context, actor identity.Actor, id string) error {
	request, err := s.OvertimeRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.EmployeeID, request.Status); err != nil {
		return err
	}

	if err := s.OvertimeRepository.Delete(ctx, id, actor.CompanyID); err != nil {
		return fmt.Errorf("delete overtime request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "overtime.deleted",
		EntityType: "overtime_request",
		EntityID:   id,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return nil
}

// ApproveRequest implements overtime.OvertimeService. The payout is computed
// from the overtime policy active now and frozen on the request; later policy
// edits never reprice an approved claim.
func (s *OvertimeServiceImpl) ApproveRequest(ctx context.Context, actor identity.Actor, id string) (overtime.OvertimeResponse, error) {
	request, err := s.OvertimeRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := approval.EnsurePending(request.Status); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	requester, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := approval.AuthorizeDecision(approver, requester); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	pol, err := s.policies.OvertimePolicy(ctx, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	before := request

	now := time.Now()
	request.CalculatedAmount = ComputePay(request.DurationMinutes, request.Date, request.IsHoliday, requester, pol)
	request.Status = approval.StatusApproved
	request.DecidedBy = &actor.EmployeeID
	request.DecidedAt = &now

	if err := s.OvertimeRepository.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("approve overtime request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "overtime.approved",
		EntityType: "overtime_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toOvertimeResponse(request), nil
}

// RejectRequest implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) RejectRequest(ctx context.Context, actor identity.Actor, req overtime.RejectOvertimeRequest) (overtime.OvertimeResponse, error) {
	if req.Reason == "" {
		return overtime.OvertimeResponse{}, approval.ErrRejectionReasonNeeded
	}

	request, err := s.OvertimeRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := approval.EnsurePending(request.Status); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	requester, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID, actor.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := approval.AuthorizeDecision(approver, requester); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	before := request

	now := time.Now()
	request.Status = approval.StatusRejected
	request.RejectionReason = &req.Reason
	request.DecidedBy = &actor.EmployeeID
	request.DecidedAt = &now

	if err := s.OvertimeRepository.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("reject overtime request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "overtime.rejected",
		EntityType: "overtime_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toOvertimeResponse(request), nil
}

// ListMyRequests implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListMyRequests(ctx context.Context, actor identity.Actor) ([]overtime.OvertimeResponse, error) {
	requests, err := s.OvertimeRepository.ListByEmployee(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list overtime requests: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toOvertimeResponse(request))
	}
	return responses, nil
}

func parseCompensation(raw string) (overtime.CompensationType, error) {
	switch overtime.CompensationType(strings.ToUpper(raw)) {
	case overtime.CompensationPayout:
		return overtime.CompensationPayout, nil
	case overtime.CompensationTimeOff:
		return overtime.CompensationTimeOff, nil
	}
	return "", fmt.Errorf("%w: got %q", overtime.ErrInvalidCompensation, raw)
}

func toOvertimeResponse(request overtime.OvertimeRequest) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:               request.ID,
		EmployeeID:       request.EmployeeID,
		Date:             request.Date.String(),
		DurationMinutes:  request.DurationMinutes,
		Reason:           request.Reason,
		Compensation:     string(request.Compensation),
		IsHoliday:        request.IsHoliday,
		CalculatedAmount: request.CalculatedAmount,
		Status:           string(request.Status),
		RejectionReason:  request.RejectionReason,
	}
}
