package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/company"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/domain/schedule"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/geo"
	"github.com/wagetime/wagetime-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.AdjustmentRepository
	employee.EmployeeRepository
	company.CompanyRepository

	policies   policy.PolicyService
	schedules  schedule.ScheduleService
	normalizer *calendar.Normalizer
	auditor    *audit.Recorder
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	adjustmentRepository attendance.AdjustmentRepository,
	employeeRepository employee.EmployeeRepository,
	companyRepository company.CompanyRepository,
	policyService policy.PolicyService,
	scheduleService schedule.ScheduleService,
	normalizer *calendar.Normalizer,
	auditor *audit.Recorder,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		AdjustmentRepository: adjustmentRepository,
		EmployeeRepository:   employeeRepository,
		CompanyRepository:    companyRepository,
		policies:             policyService,
		schedules:            scheduleService,
		normalizer:           normalizer,
		auditor:              auditor,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, actor identity.Actor, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	if err := s.checkGeofence(ctx, actor.CompanyID, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	date := s.normalizer.Normalize(now)

	hasShift, err := s.schedules.HasShift(ctx, emp.ID, emp.CompanyID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("check shift: %w", err)
	}
	// Owners clock in without a shift on file.
	if !hasShift && emp.Role != employee.RoleOwner {
		return attendance.AttendanceResponse{}, attendance.ErrNoShiftScheduled
	}

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date, emp.CompanyID); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("get attendance record: %w", err)
	}

	status := attendance.StatusPresent
	unscheduled := false
	if hasShift {
		within, err := s.schedules.WithinSchedule(ctx, emp.ID, emp.CompanyID, now)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("check schedule window: %w", err)
		}
		unscheduled = !within

		rules, err := s.policies.AttendanceRules(ctx, emp.CompanyID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		start, err := s.schedules.EarliestStart(ctx, emp.ID, emp.CompanyID, date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("resolve shift start: %w", err)
		}
		if start != nil && LatenessMinutes(now, *start, rules.GracePeriodMinutes) > 0 {
			status = attendance.StatusLate
		}
	}

	lat, lon := req.Latitude, req.Longitude
	record := attendance.AttendanceRecord{
		ID:                  uuid.NewString(),
		EmployeeID:          emp.ID,
		CompanyID:           emp.CompanyID,
		Date:                date,
		ClockIn:             &now,
		ClockInLatitude:     &lat,
		ClockInLongitude:    &lon,
		Status:              status,
		Notes:               req.Notes,
		UnscheduledOvertime: unscheduled,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordConflict) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("create attendance record: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.clock_in",
		EntityType: "attendance_record",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, actor identity.Actor, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	if err := s.checkGeofence(ctx, actor.CompanyID, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	date := s.normalizer.Normalize(now)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date, emp.CompanyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("get attendance record: %w", err)
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	rules, err := s.policies.AttendanceRules(ctx, emp.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	before := record

	lat, lon := req.Latitude, req.Longitude
	record.ClockOut = &now
	record.ClockOutLatitude = &lat
	record.ClockOutLongitude = &lon
	record.WorkDurationMinutes = ComputeDuration(*record.ClockIn, now, rules)
	record.Status = settledStatus(record.WorkDurationMinutes, rules)

	hasShift, err := s.schedules.HasShift(ctx, emp.ID, emp.CompanyID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("check shift: %w", err)
	}
	if hasShift && !record.UnscheduledOvertime {
		within, err := s.schedules.WithinSchedule(ctx, emp.ID, emp.CompanyID, now)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("check schedule window: %w", err)
		}
		record.UnscheduledOvertime = !within
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("update attendance record: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.clock_out",
		EntityType: "attendance_record",
		EntityID:   record.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(record),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAttendanceResponse(record), nil
}

// GetRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, actor identity.Actor, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	// Plain employees see only their own rows; cross-employee lookups read as
	// not found rather than forbidden.
	if !actor.IsOwner() && !actor.IsManager() && record.EmployeeID != actor.EmployeeID {
		return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
	}
	return toAttendanceResponse(record), nil
}

// SubmitAdjustment implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitAdjustment(ctx context.Context, actor identity.Actor, req attendance.SubmitAdjustmentRequest) (attendance.AdjustmentResponse, error) {
	clockIn, clockOut, err := req.Times()
	if err != nil {
		return attendance.AdjustmentResponse{}, fmt.Errorf("%w: %v", attendance.ErrInvalidAdjustmentSpan, err)
	}
	if !clockOut.After(clockIn) {
		return attendance.AdjustmentResponse{}, attendance.ErrInvalidAdjustmentSpan
	}
	if req.Reason == "" {
		return attendance.AdjustmentResponse{}, attendance.ErrReasonRequired
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceRecordID, actor.CompanyID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	// A manager may file on behalf of a direct report. The manager becomes the
	// requester, so the escalated approval rule applies to the request.
	if record.EmployeeID != actor.EmployeeID {
		if !actor.IsManager() {
			return attendance.AdjustmentResponse{}, approval.ErrNotRequestOwner
		}
		subject, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID, actor.CompanyID)
		if err != nil {
			return attendance.AdjustmentResponse{}, err
		}
		if !subject.IsDirectReportOf(actor.EmployeeID) {
			return attendance.AdjustmentResponse{}, approval.ErrNotDirectReport
		}
	}

	if _, err := s.AdjustmentRepository.GetActiveByRecord(ctx, record.ID); err == nil {
		return attendance.AdjustmentResponse{}, attendance.ErrActiveAdjustmentExists
	} else if !errors.Is(err, attendance.ErrAdjustmentNotFound) {
		return attendance.AdjustmentResponse{}, fmt.Errorf("get active adjustment: %w", err)
	}

	request := attendance.AdjustmentRequest{
		ID:                 uuid.NewString(),
		AttendanceRecordID: record.ID,
		RequesterID:        actor.EmployeeID,
		CompanyID:          actor.CompanyID,
		ProposedClockIn:    clockIn,
		ProposedClockOut:   clockOut,
		Reason:             req.Reason,
		Status:             approval.StatusPending,
	}

	created, err := s.AdjustmentRepository.Create(ctx, request)
	if err != nil {
		if errors.Is(err, attendance.ErrActiveAdjustmentExists) {
			return attendance.AdjustmentResponse{}, attendance.ErrActiveAdjustmentExists
		}
		return attendance.AdjustmentResponse{}, fmt.Errorf("create adjustment request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_submitted",
		EntityType: "adjustment_request",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAdjustmentResponse(created), nil
}

// UpdateAdjustment implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAdjustment(ctx context.Context, actor identity.Actor, req attendance.UpdateAdjustmentRequest) (attendance.AdjustmentResponse, error) {
	request, err := s.AdjustmentRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.RequesterID, request.Status); err != nil {
		return attendance.AdjustmentResponse{}, err
	}

	before := request

	if req.ClockIn != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			return attendance.AdjustmentResponse{}, fmt.Errorf("%w: %v", attendance.ErrInvalidAdjustmentSpan, err)
		}
		request.ProposedClockIn = t
	}
	if req.ClockOut != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return attendance.AdjustmentResponse{}, fmt.Errorf("%w: %v", attendance.ErrInvalidAdjustmentSpan, err)
		}
		request.ProposedClockOut = t
	}
	if req.Reason != nil {
		if *req.Reason == "" {
			return attendance.AdjustmentResponse{}, attendance.ErrReasonRequired
		}
		request.Reason = *req.Reason
	}
	if !request.ProposedClockOut.After(request.ProposedClockIn) {
		return attendance.AdjustmentResponse{}, attendance.ErrInvalidAdjustmentSpan
	}

	if err := s.AdjustmentRepository.Update(ctx, request); err != nil {
		return attendance.AdjustmentResponse{}, fmt.Errorf("update adjustment request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_updated",
		EntityType: "adjustment_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAdjustmentResponse(request), nil
}

// DeleteAdjustment implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAdjustment(ctx context.Context, actor identity.Actor, id string) error {
	request, err := s.AdjustmentRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := approval.AuthorizeModify(actor.EmployeeID, request.RequesterID, request.Status); err != nil {
		return err
	}

	if err := s.AdjustmentRepository.Delete(ctx, id, actor.CompanyID); err != nil {
		return fmt.Errorf("delete adjustment request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_deleted",
		EntityType: "adjustment_request",
		EntityID:   id,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(request),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return nil
}

// ResubmitAdjustment implements attendance.AttendanceService. A rejected
// request is overwritten in place and returns to PENDING.
func (s *AttendanceServiceImpl) ResubmitAdjustment(ctx context.Context, actor identity.Actor, req attendance.SubmitAdjustmentRequest) (attendance.AdjustmentResponse, error) {
	clockIn, clockOut, err := req.Times()
	if err != nil {
		return attendance.AdjustmentResponse{}, fmt.Errorf("%w: %v", attendance.ErrInvalidAdjustmentSpan, err)
	}
	if !clockOut.After(clockIn) {
		return attendance.AdjustmentResponse{}, attendance.ErrInvalidAdjustmentSpan
	}
	if req.Reason == "" {
		return attendance.AdjustmentResponse{}, attendance.ErrReasonRequired
	}

	request, err := s.AdjustmentRepository.GetLatestByRecord(ctx, req.AttendanceRecordID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	if request.CompanyID != actor.CompanyID {
		return attendance.AdjustmentResponse{}, attendance.ErrAdjustmentNotFound
	}
	if err := approval.AuthorizeResubmit(approval.KindAttendanceAdjustment, actor.EmployeeID, request.RequesterID, request.Status); err != nil {
		return attendance.AdjustmentResponse{}, err
	}

	before := request

	request.ProposedClockIn = clockIn
	request.ProposedClockOut = clockOut
	request.Reason = req.Reason
	request.Status = approval.StatusPending
	request.RejectionReason = nil
	request.DecidedBy = nil
	request.DecidedAt = nil

	if err := s.AdjustmentRepository.Update(ctx, request); err != nil {
		return attendance.AdjustmentResponse{}, fmt.Errorf("resubmit adjustment request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_resubmitted",
		EntityType: "adjustment_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAdjustmentResponse(request), nil
}

// ApproveAdjustment implements attendance.AttendanceService. Approval and
// settlement of the attendance record commit in one transaction so an approved
// request can never leave the record untouched.
func (s *AttendanceServiceImpl) ApproveAdjustment(ctx context.Context, actor identity.Actor, id string) (attendance.AdjustmentResponse, error) {
	var request attendance.AdjustmentRequest
	var recordBefore, recordAfter attendance.AttendanceRecord

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		request, err = s.AdjustmentRepository.GetByID(txCtx, id, actor.CompanyID)
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
		requester, err := s.EmployeeRepository.GetByID(txCtx, request.RequesterID, actor.CompanyID)
		if err != nil {
			return err
		}
		if err := approval.AuthorizeDecision(approver, requester); err != nil {
			return err
		}

		record, err := s.AttendanceRepository.GetByID(txCtx, request.AttendanceRecordID, actor.CompanyID)
		if err != nil {
			return err
		}
		recordBefore = record

		rules, err := s.policies.AttendanceRules(txCtx, actor.CompanyID)
		if err != nil {
			return err
		}

		clockIn := request.ProposedClockIn
		clockOut := request.ProposedClockOut
		record.ClockIn = &clockIn
		record.ClockOut = &clockOut
		record.WorkDurationMinutes = ComputeDuration(clockIn, clockOut, rules)
		record.Status = settledStatus(record.WorkDurationMinutes, rules)
		record.AdjustmentRequestID = &request.ID

		if err := s.AttendanceRepository.Update(txCtx, record); err != nil {
			return fmt.Errorf("settle attendance record: %w", err)
		}
		recordAfter = record

		now := time.Now()
		request.Status = approval.StatusApproved
		request.DecidedBy = &actor.EmployeeID
		request.DecidedAt = &now
		if err := s.AdjustmentRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("approve adjustment request: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_approved",
		EntityType: "attendance_record",
		EntityID:   recordAfter.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(recordBefore),
		After:      audit.Snapshot(recordAfter),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAdjustmentResponse(request), nil
}

// RejectAdjustment implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RejectAdjustment(ctx context.Context, actor identity.Actor, req attendance.RejectAdjustmentRequest) (attendance.AdjustmentResponse, error) {
	if req.Reason == "" {
		return attendance.AdjustmentResponse{}, approval.ErrRejectionReasonNeeded
	}

	request, err := s.AdjustmentRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	if err := approval.EnsurePending(request.Status); err != nil {
		return attendance.AdjustmentResponse{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID, actor.CompanyID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	requester, err := s.EmployeeRepository.GetByID(ctx, request.RequesterID, actor.CompanyID)
	if err != nil {
		return attendance.AdjustmentResponse{}, err
	}
	if err := approval.AuthorizeDecision(approver, requester); err != nil {
		return attendance.AdjustmentResponse{}, err
	}

	before := request

	now := time.Now()
	request.Status = approval.StatusRejected
	request.RejectionReason = &req.Reason
	request.DecidedBy = &actor.EmployeeID
	request.DecidedAt = &now

	if err := s.AdjustmentRepository.Update(ctx, request); err != nil {
		return attendance.AdjustmentResponse{}, fmt.Errorf("reject adjustment request: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "attendance.adjustment_rejected",
		EntityType: "adjustment_request",
		EntityID:   request.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(request),
		Reason:     &req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toAdjustmentResponse(request), nil
}

// checkGeofence fails closed: geofencing enabled without a usable
// configuration blocks the clock event.
func (s *AttendanceServiceImpl) checkGeofence(ctx context.Context, companyID string, lat, lon float64) error {
	comp, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if !comp.GeofencingEnabled {
		return nil
	}
	if !comp.GeofenceConfigured() {
		return company.ErrGeofenceNotConfigured
	}
	if !geo.WithinRadius(lat, lon, *comp.GeofenceLatitude, *comp.GeofenceLongitude, *comp.GeofenceRadiusMeters) {
		return attendance.ErrOutsideGeofence
	}
	return nil
}

// settledStatus derives the final status of a completed record. Lateness is an
// intraday status only; a settled day is either PRESENT or HALF_DAY.
func settledStatus(durationMinutes int, rules policy.AttendanceRules) attendance.Status {
	if durationMinutes < rules.MinimumWorkHours*60 {
		return attendance.StatusHalfDay
	}
	return attendance.StatusPresent
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func toAttendanceResponse(record attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                  record.ID,
		EmployeeID:          record.EmployeeID,
		Date:                record.Date.String(),
		ClockIn:             timePtrToString(record.ClockIn),
		ClockOut:            timePtrToString(record.ClockOut),
		ClockInLatitude:     record.ClockInLatitude,
		ClockInLongitude:    record.ClockInLongitude,
		ClockOutLatitude:    record.ClockOutLatitude,
		ClockOutLongitude:   record.ClockOutLongitude,
		WorkDurationMinutes: record.WorkDurationMinutes,
		Status:              string(record.Status),
		Notes:               record.Notes,
		UnscheduledOvertime: record.UnscheduledOvertime,
	}
}

func toAdjustmentResponse(request attendance.AdjustmentRequest) attendance.AdjustmentResponse {
	return attendance.AdjustmentResponse{
		ID:                 request.ID,
		AttendanceRecordID: request.AttendanceRecordID,
		RequesterID:        request.RequesterID,
		ProposedClockIn:    request.ProposedClockIn.Format(time.RFC3339),
		ProposedClockOut:   request.ProposedClockOut.Format(time.RFC3339),
		Reason:             request.Reason,
		Status:             string(request.Status),
		RejectionReason:    request.RejectionReason,
	}
}
