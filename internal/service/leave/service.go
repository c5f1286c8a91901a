package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
	"github.com/wagetime/wagetime-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository

	policies   policy.PolicyService
	normalizer *calendar.Normalizer
	auditor    *audit.Recorder
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	policyService policy.PolicyService,
	normalizer *calendar.Normalizer,
	auditor *audit.Recorder,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		AttendanceRepository:   attendanceRepository,
		policies:               policyService,
		normalizer:             normalizer,
		auditor:                auditor,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, actor identity.Actor, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if !actor.IsOwner() {
		return leave.LeaveTypeResponse{}, policy.ErrOwnerOnly
	}
	if req.Name == "" {
		return leave.LeaveTypeResponse{}, leave.ErrNameRequired
	}

	leaveType := leave.LeaveType{
		ID:                 uuid.NewString(),
		CompanyID:          actor.CompanyID,
		Name:               req.Name,
		IsPaid:             req.IsPaid,
		MaxBalance:         req.MaxBalance,
		AccrualEnabled:     req.AccrualEnabled,
		AccrualRate:        req.AccrualRate,
		CarryoverAllowed:   req.CarryoverAllowed,
		CarryoverMax:       req.CarryoverMax,
		ExpiresAfterMonths: req.ExpiresAfterMonths,
		RequiresAttachment: req.RequiresAttachment,
		IsActive:           true,
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("create leave type: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.type_created",
		EntityType: "leave_type",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveTypeResponse(created), nil
}

// UpdateLeaveType implements leave.LeaveService. Edits steer future balance
// derivation only; stored ledger rows keep their figures.
func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, actor identity.Actor, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if !actor.IsOwner() {
		return leave.LeaveTypeResponse{}, policy.ErrOwnerOnly
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	before := leaveType

	if req.Name != nil {
		if *req.Name == "" {
			return leave.LeaveTypeResponse{}, leave.ErrNameRequired
		}
		leaveType.Name = *req.Name
	}
	if req.IsPaid != nil {
		leaveType.IsPaid = *req.IsPaid
	}
	if req.MaxBalance != nil {
		leaveType.MaxBalance = req.MaxBalance
	}
	if req.AccrualEnabled != nil {
		leaveType.AccrualEnabled = *req.AccrualEnabled
	}
	if req.AccrualRate != nil {
		leaveType.AccrualRate = *req.AccrualRate
	}
	if req.CarryoverAllowed != nil {
		leaveType.CarryoverAllowed = *req.CarryoverAllowed
	}
	if req.CarryoverMax != nil {
		leaveType.CarryoverMax = req.CarryoverMax
	}
	if req.ExpiresAfterMonths != nil {
		leaveType.ExpiresAfterMonths = *req.ExpiresAfterMonths
	}
	if req.RequiresAttachment != nil {
		leaveType.RequiresAttachment = *req.RequiresAttachment
	}
	if req.IsActive != nil {
		leaveType.IsActive = *req.IsActive
	}

	if err := s.LeaveTypeRepository.Update(ctx, leaveType); err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("update leave type: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.type_updated",
		EntityType: "leave_type",
		EntityID:   leaveType.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(leaveType),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveTypeResponse(leaveType), nil
}

// ListLeaveTypes implements leave.LeaveService. Non-owners see active types
// only.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, actor identity.Actor) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.ListByCompany(ctx, actor.CompanyID, !actor.IsOwner())
	if err != nil {
		return nil, fmt.Errorf("list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, leaveType := range types {
		responses = append(responses, toLeaveTypeResponse(leaveType))
	}
	return responses, nil
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, actor identity.Actor, employeeID, leaveTypeID string, year int, month time.Month) (leave.BalanceResponse, error) {
	if employeeID != actor.EmployeeID && !actor.IsOwner() && !actor.IsManager() {
		return leave.BalanceResponse{}, leave.ErrBalanceNotFound
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, leaveTypeID, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	pol, err := s.policies.LeavePolicy(ctx, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	row, err := s.resolveBalance(ctx, emp, leaveType, pol, year, month)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return toBalanceResponse(row), nil
}

// SetManualQuota implements leave.LeaveService. The stored figure is served
// verbatim afterwards; no recomputation touches it.
func (s *LeaveServiceImpl) SetManualQuota(ctx context.Context, actor identity.Actor, req leave.SetManualQuotaRequest) (leave.BalanceResponse, error) {
	if !actor.IsOwner() {
		return leave.BalanceResponse{}, policy.ErrOwnerOnly
	}
	pol, err := s.policies.LeavePolicy(ctx, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	if !pol.ManualQuotaEnabled {
		return leave.BalanceResponse{}, leave.ErrManualQuotaForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID, actor.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	row := leave.LeaveBalance{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		LeaveTypeID: leaveType.ID,
		CompanyID:   actor.CompanyID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: time.Month(req.PeriodMonth),
		Balance:     req.Balance,
	}
	if existing, err := s.LeaveBalanceRepository.Get(ctx, emp.ID, leaveType.ID, req.PeriodYear, time.Month(req.PeriodMonth)); err == nil {
		row = existing
		row.Balance = req.Balance
	} else if !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.BalanceResponse{}, fmt.Errorf("get leave balance: %w", err)
	}

	saved, err := s.LeaveBalanceRepository.Upsert(ctx, row)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("store manual quota: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.manual_quota_set",
		EntityType: "leave_balance",
		EntityID:   saved.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(saved),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toBalanceResponse(saved), nil
}

// SubmitRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, actor identity.Actor, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if req.Reason == "" {
		return leave.LeaveRequestResponse{}, attendance.ErrReasonRequired
	}

	start, err := s.normalizer.NormalizeString(req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %v", leave.ErrInvalidDateRange, err)
	}
	end, err := s.normalizer.NormalizeString(req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %v", leave.ErrInvalidDateRange, err)
	}
	if end.Before(start) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !emp.IsActive {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeInactive
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeInactive
	}
	if leaveType.RequiresAttachment && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return leave.LeaveRequestResponse{}, leave.ErrAttachmentRequired
	}

	pol, err := s.policies.LeavePolicy(ctx, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	days := CountDays(start, end, pol)
	if days.IsZero() {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	overlapping, err := s.LeaveRequestRepository.HasOverlapping(ctx, emp.ID, start, end, "")
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingRequest
	}

	balance, err := s.resolveBalance(ctx, emp, leaveType, pol, start.Year, start.Month)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if balance.Balance.LessThan(days) {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	request := leave.LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		LeaveTypeID:   leaveType.ID,
		CompanyID:     actor.CompanyID,
		StartDate:     start,
		EndDate:       end,
		Days:          days,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        approval.StatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("create leave request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.submitted",
		EntityType: "leave_request",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveRequestResponse(created), nil
}

// UpdateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateRequest(ctx context.Context, actor identity.Actor, req leave.UpdateLeaveRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.EmployeeID, request.Status); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	before := request

	if req.StartDate != nil {
		start, err := s.normalizer.NormalizeString(*req.StartDate)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %v", leave.ErrInvalidDateRange, err)
		}
		request.StartDate = start
	}
	if req.EndDate != nil {
		end, err := s.normalizer.NormalizeString(*req.EndDate)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %v", leave.ErrInvalidDateRange, err)
		}
		request.EndDate = end
	}
	if request.EndDate.Before(request.StartDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	if req.Reason != nil {
		if *req.Reason == "" {
			return leave.LeaveRequestResponse{}, attendance.ErrReasonRequired
		}
		request.Reason = *req.Reason
	}
	if req.AttachmentURL != nil {
		request.AttachmentURL = req.AttachmentURL
	}

	pol, err := s.policies.LeavePolicy(ctx, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	request.Days = CountDays(request.StartDate, request.EndDate, pol)
	if request.Days.IsZero() {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	overlapping, err := s.LeaveRequestRepository.HasOverlapping(ctx, request.EmployeeID, request.StartDate, request.EndDate, request.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingRequest
	}

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("update leave request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.updated",
		EntityType: "leave_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveRequestResponse(request), nil
}

// DeleteRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteRequest(ctx context.Context, actor identity.Actor, id string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.EmployeeID, request.Status); err != nil {
		return err
	}

	if err := s.LeaveRequestRepository.Delete(ctx, id, actor.CompanyID); err != nil {
		return fmt.Errorf("delete leave request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.deleted",
		EntityType: "leave_request",
		EntityID:   id,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return nil
}

// ApproveRequest implements leave.LeaveService. The balance debit and the
// ON_LEAVE attendance rows commit with the status flip in one transaction.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, actor identity.Actor, id string) (leave.LeaveRequestResponse, error) {
	var request leave.LeaveRequest

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		request, err = s.LeaveRequestRepository.GetByID(txCtx, id, actor.CompanyID)
		if err != nil {
			return err
		}
		if err := approval.EnsurePending(request.Status); err != nil {
			return err
		}

		approver, err := s.EmployeeRepository.GetByID(txCtx, actor.EmployeeID, actor.CompanyID)
		if err != nil {
			return err
		}
		requester, err := s.EmployeeRepository.GetByID(txCtx, request.EmployeeID, actor.CompanyID)
		if err != nil {
			return err
		}
		if err := approval.AuthorizeDecision(approver, requester); err != nil {
			return err
		}

		leaveType, err := s.LeaveTypeRepository.GetByID(txCtx, request.LeaveTypeID, actor.CompanyID)
		if err != nil {
			return err
		}
		pol, err := s.policies.LeavePolicy(txCtx, actor.CompanyID)
		if err != nil {
			return err
		}

		balance, err := s.resolveBalance(txCtx, requester, leaveType, pol, request.StartDate.Year, request.StartDate.Month)
		if err != nil {
			return err
		}
		if balance.Balance.LessThan(request.Days) {
			return leave.ErrInsufficientBalance
		}

		balance.Used = balance.Used.Add(request.Days)
		balance.Balance = balance.Balance.Sub(request.Days)
		if _, err := s.LeaveBalanceRepository.Upsert(txCtx, balance); err != nil {
			return fmt.Errorf("debit leave balance: %w", err)
		}

		if err := s.markDaysOnLeave(txCtx, requester, request, pol); err != nil {
			return err
		}

		now := time.Now()
		request.Status = approval.StatusApproved
		request.DecidedBy = &actor.EmployeeID
		request.DecidedAt = &now
		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("approve leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.approved",
		EntityType: "leave_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveRequestResponse(request), nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, actor identity.Actor, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if req.Reason == "" {
		return leave.LeaveRequestResponse{}, approval.ErrRejectionReasonNeeded
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := approval.EnsurePending(request.Status); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	requester, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID, actor.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := approval.AuthorizeDecision(approver, requester); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	before := request

	now := time.Now()
	request.Status = approval.StatusRejected
	request.RejectionReason = &req.Reason
	request.DecidedBy = &actor.EmployeeID
	request.DecidedAt = &now

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("reject leave request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "leave.rejected",
		EntityType: "leave_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toLeaveRequestResponse(request), nil
}

// ListMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyRequests(ctx context.Context, actor identity.Actor) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveRequestResponse(request))
	}
	return responses, nil
}

// resolveBalance serves the stored ledger row or derives it lazily. In
// manual-quota mode stored rows are authoritative and missing rows read as
// zero without being derived.
func (s *LeaveServiceImpl) resolveBalance(ctx context.Context, emp employee.Employee, leaveType leave.LeaveType, pol policy.LeavePolicy, year int, month time.Month) (leave.LeaveBalance, error) {
	stored, err := s.LeaveBalanceRepository.Get(ctx, emp.ID, leaveType.ID, year, month)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.LeaveBalance{}, fmt.Errorf("get leave balance: %w", err)
	}

	if pol.ManualQuotaEnabled {
		return leave.LeaveBalance{
			EmployeeID:  emp.ID,
			LeaveTypeID: leaveType.ID,
			CompanyID:   emp.CompanyID,
			PeriodYear:  year,
			PeriodMonth: month,
		}, nil
	}

	input := AccrualInput{
		Type:        leaveType,
		Policy:      pol,
		PeriodYear:  year,
		PeriodMonth: month,
		Used:        decimal.Zero,
	}

	if previous, err := s.LeaveBalanceRepository.GetLatestBefore(ctx, emp.ID, leaveType.ID, year, month); err == nil {
		input.Previous = &previous
	} else if !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.LeaveBalance{}, fmt.Errorf("get previous balance: %w", err)
	}

	if month == pol.CarryoverMonth {
		if reference, err := s.LeaveBalanceRepository.Get(ctx, emp.ID, leaveType.ID, year-1, pol.ReferenceMonth); err == nil {
			input.Reference = &reference
		} else if !errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.LeaveBalance{}, fmt.Errorf("get reference balance: %w", err)
		}
	}

	row := ComputeBalance(input)
	row.ID = uuid.NewString()
	row.EmployeeID = emp.ID
	row.CompanyID = emp.CompanyID

	saved, err := s.LeaveBalanceRepository.Upsert(ctx, row)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("store derived balance: %w", err)
	}
	return saved, nil
}

// markDaysOnLeave writes ON_LEAVE attendance rows for the covered days. Days
// with an existing attendance record keep it.
func (s *LeaveServiceImpl) markDaysOnLeave(ctx context.Context, emp employee.Employee, request leave.LeaveRequest, pol policy.LeavePolicy) error {
	for d := request.StartDate; !d.After(request.EndDate); d = d.AddDays(1) {
		if d.Weekday() == pol.ExcludedWeekday {
			continue
		}
		if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, d, emp.CompanyID); err == nil {
			continue
		} else if !errors.Is(err, attendance.ErrRecordNotFound) {
			return fmt.Errorf("get attendance record: %w", err)
		}

		record := attendance.AttendanceRecord{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			CompanyID:  emp.CompanyID,
			Date:       d,
			Status:     attendance.StatusOnLeave,
		}
		if _, err := s.AttendanceRepository.Create(ctx, record); err != nil {
			if errors.Is(err, attendance.ErrRecordConflict) {
				continue
			}
			return fmt.Errorf("create on-leave record: %w", err)
		}
	}
	return nil
}

func toLeaveTypeResponse(leaveType leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:                 leaveType.ID,
		Name:               leaveType.Name,
		IsPaid:             leaveType.IsPaid,
		MaxBalance:         leaveType.MaxBalance,
		AccrualEnabled:     leaveType.AccrualEnabled,
		AccrualRate:        leaveType.AccrualRate,
		CarryoverAllowed:   leaveType.CarryoverAllowed,
		CarryoverMax:       leaveType.CarryoverMax,
		ExpiresAfterMonths: leaveType.ExpiresAfterMonths,
		RequiresAttachment: leaveType.RequiresAttachment,
		IsActive:           leaveType.IsActive,
	}
}

func toBalanceResponse(balance leave.LeaveBalance) leave.BalanceResponse {
	return leave.BalanceResponse{
		EmployeeID:  balance.EmployeeID,
		LeaveTypeID: balance.LeaveTypeID,
		PeriodYear:  balance.PeriodYear,
		PeriodMonth: int(balance.PeriodMonth),
		Balance:     balance.Balance,
		Accrued:     balance.Accrued,
		Used:        balance.Used,
		CarriedOver: balance.CarriedOver,
		Expired:     balance.Expired,
	}
}

func toLeaveRequestResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		LeaveTypeID:     request.LeaveTypeID,
		StartDate:       request.StartDate.String(),
		EndDate:         request.EndDate.String(),
		Days:            request.Days,
		Reason:          request.Reason,
		AttachmentURL:   request.AttachmentURL,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
	}
}
