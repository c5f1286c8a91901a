package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/schedule"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type ScheduleServiceImpl struct {
	schedule.ShiftScheduleRepository
	employee.EmployeeRepository

	normalizer *calendar.Normalizer
	auditor    *audit.Recorder
}

func NewScheduleService(
	slotRepository schedule.ShiftScheduleRepository,
	employeeRepository employee.EmployeeRepository,
	normalizer *calendar.Normalizer,
	auditor *audit.Recorder,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		ShiftScheduleRepository: slotRepository,
		EmployeeRepository:      employeeRepository,
		normalizer:              normalizer,
		auditor:                 auditor,
	}
}

// HasShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) HasShift(ctx context.Context, employeeID, companyID string, date calendar.Date) (bool, error) {
	slots, err := s.ShiftScheduleRepository.ListForDate(ctx, employeeID, companyID, date)
	if err != nil {
		return false, fmt.Errorf("list slots for date: %w", err)
	}
	return len(slots) > 0, nil
}

// WithinSchedule implements schedule.ScheduleService. Overnight slots that
// started the previous business day are still in scope.
func (s *ScheduleServiceImpl) WithinSchedule(ctx context.Context, employeeID, companyID string, instant time.Time) (bool, error) {
	loc := s.normalizer.Location()
	date := s.normalizer.Normalize(instant)

	for _, day := range []calendar.Date{date.AddDays(-1), date} {
		slots, err := s.ShiftScheduleRepository.ListForDate(ctx, employeeID, companyID, day)
		if err != nil {
			return false, fmt.Errorf("list slots for date: %w", err)
		}
		for _, slot := range slots {
			from, to, err := slot.WindowOn(day, loc)
			if err != nil {
				return false, err
			}
			if !instant.Before(from) && instant.Before(to) {
				return true, nil
			}
		}
	}
	return false, nil
}

// EarliestStart implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) EarliestStart(ctx context.Context, employeeID, companyID string, date calendar.Date) (*time.Time, error) {
	slots, err := s.ShiftScheduleRepository.ListForDate(ctx, employeeID, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("list slots for date: %w", err)
	}

	var earliest *time.Time
	loc := s.normalizer.Location()
	for _, slot := range slots {
		from, _, err := slot.WindowOn(date, loc)
		if err != nil {
			return nil, err
		}
		if earliest == nil || from.Before(*earliest) {
			start := from
			earliest = &start
		}
	}
	return earliest, nil
}

// CreateSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSlot(ctx context.Context, actor identity.Actor, req schedule.CreateSlotRequest) (schedule.SlotResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	target, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, actor.CompanyID)
	if err != nil {
		return schedule.SlotResponse{}, err
	}
	if err := s.authorizeManage(ctx, actor, target); err != nil {
		return schedule.SlotResponse{}, err
	}

	var slot schedule.ShiftSchedule
	switch schedule.SlotKind(strings.ToUpper(req.Kind)) {
	case schedule.KindRecurring:
		slot = schedule.NewRecurring(target.ID, actor.CompanyID, time.Weekday(*req.DayOfWeek), req.StartTime, req.EndTime)
	case schedule.KindDateSpecific:
		date, err := s.normalizer.NormalizeString(*req.Date)
		if err != nil {
			return schedule.SlotResponse{}, fmt.Errorf("%w: %v", schedule.ErrInvalidSlotKind, err)
		}
		slot = schedule.NewDateSpecific(target.ID, actor.CompanyID, date, req.StartTime, req.EndTime)
	default:
		return schedule.SlotResponse{}, schedule.ErrInvalidSlotKind
	}
	slot.ID = uuid.NewString()
	if err := slot.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	created, err := s.ShiftScheduleRepository.Create(ctx, slot)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "schedule.slot_created",
		EntityType: "shift_schedule",
		EntityID:   created.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(created),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toSlotResponse(created), nil
}

// DeleteSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSlot(ctx context.Context, actor identity.Actor, id string) error {
	slot, err := s.ShiftScheduleRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	target, err := s.EmployeeRepository.GetByID(ctx, slot.EmployeeID, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := s.authorizeManage(ctx, actor, target); err != nil {
		return err
	}

	if err := s.ShiftScheduleRepository.Delete(ctx, id, actor.CompanyID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "schedule.slot_deleted",
		EntityType: "shift_schedule",
		EntityID:   id,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(slot),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return nil
}

// ListEmployeeSlots implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListEmployeeSlots(ctx context.Context, actor identity.Actor, employeeID string) ([]schedule.SlotResponse, error) {
	if employeeID != actor.EmployeeID && !actor.IsOwner() && !actor.IsManager() {
		return nil, schedule.ErrScheduleForbidden
	}

	slots, err := s.ShiftScheduleRepository.ListByEmployee(ctx, employeeID, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	responses := make([]schedule.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, toSlotResponse(slot))
	}
	return responses, nil
}

// authorizeManage allows the owner to manage any schedule and a manager to
// manage direct reports only.
func (s *ScheduleServiceImpl) authorizeManage(ctx context.Context, actor identity.Actor, target employee.Employee) error {
	if actor.IsOwner() {
		return nil
	}
	if actor.IsManager() && (target.IsDirectReportOf(actor.EmployeeID) || target.ID == actor.EmployeeID) {
		return nil
	}
	return schedule.ErrScheduleForbidden
}

func toSlotResponse(slot schedule.ShiftSchedule) schedule.SlotResponse {
	resp := schedule.SlotResponse{
		ID:         slot.ID,
		EmployeeID: slot.EmployeeID,
		Kind:       string(slot.Kind),
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
	}
	if slot.DayOfWeek != nil {
		day := int(*slot.DayOfWeek)
		resp.DayOfWeek = &day
	}
	if slot.Date != nil {
		date := slot.Date.String()
		resp.Date = &date
	}
	return resp
}
