package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/domain/payroll"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
	"github.com/wagetime/wagetime-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRunRepository
	payroll.PayrollItemRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	overtime.OvertimeRepository

	policies policy.PolicyService
	auditor  *audit.Recorder
}

func NewPayrollService(
	db *database.DB,
	runRepository payroll.PayrollRunRepository,
	itemRepository payroll.PayrollItemRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	overtimeRepository overtime.OvertimeRepository,
	policyService policy.PolicyService,
	auditor *audit.Recorder,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		db:                    db,
		PayrollRunRepository:  runRepository,
		PayrollItemRepository: itemRepository,
		EmployeeRepository:    employeeRepository,
		AttendanceRepository:  attendanceRepository,
		OvertimeRepository:    overtimeRepository,
		policies:              policyService,
		auditor:               auditor,
	}
}

// CreateRun implements payroll.PayrollService. The run is born PROCESSING,
// filled with one item per active employee and lands in DRAFT on commit.
func (s *PayrollServiceImpl) CreateRun(ctx context.Context, actor identity.Actor, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	if !actor.IsOwner() {
		return payroll.RunResponse{}, payroll.ErrPayrollForbidden
	}
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	year := req.PeriodYear
	month := time.Month(req.PeriodMonth)

	if _, err := s.PayrollRunRepository.GetByPeriod(ctx, actor.CompanyID, year, month); err == nil {
		return payroll.RunResponse{}, payroll.ErrRunExists
	} else if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.RunResponse{}, fmt.Errorf("get payroll run: %w", err)
	}

	var run payroll.PayrollRun
	var items []payroll.PayrollItem

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.PayrollRunRepository.Create(txCtx, payroll.PayrollRun{
			ID:          uuid.NewString(),
			CompanyID:   actor.CompanyID,
			PeriodYear:  year,
			PeriodMonth: month,
			Status:      payroll.RunStatusProcessing,
			TotalAmount: decimal.Zero,
		})
		if err != nil {
			return err
		}
		run = created

		cfg, err := s.policies.PayrollConfig(txCtx, actor.CompanyID)
		if err != nil {
			return err
		}
		employees, err := s.EmployeeRepository.GetActiveByCompanyID(txCtx, actor.CompanyID)
		if err != nil {
			return fmt.Errorf("list active employees: %w", err)
		}

		total := decimal.Zero
		for _, emp := range employees {
			item, err := s.buildItem(txCtx, run.ID, emp, cfg, year, month)
			if err != nil {
				return err
			}
			saved, err := s.PayrollItemRepository.Create(txCtx, item)
			if err != nil {
				return fmt.Errorf("create payroll item: %w", err)
			}
			items = append(items, saved)
			total = total.Add(saved.NetPay)
		}

		run.Status = payroll.RunStatusDraft
		run.TotalAmount = total
		return s.PayrollRunRepository.Update(txCtx, run)
	})
	if err != nil {
		if errors.Is(err, payroll.ErrRunExists) || database.IsUniqueViolation(err) {
			return payroll.RunResponse{}, payroll.ErrRunExists
		}
		return payroll.RunResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "payroll.run_created",
		EntityType: "payroll_run",
		EntityID:   run.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(run),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toRunResponse(run, items), nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, actor identity.Actor, id string) (payroll.RunResponse, error) {
	if !actor.IsOwner() {
		return payroll.RunResponse{}, payroll.ErrPayrollForbidden
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	items, err := s.PayrollItemRepository.ListByRun(ctx, run.ID)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("list payroll items: %w", err)
	}
	return toRunResponse(run, items), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context, actor identity.Actor) ([]payroll.RunResponse, error) {
	if !actor.IsOwner() {
		return nil, payroll.ErrPayrollForbidden
	}

	runs, err := s.PayrollRunRepository.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list payroll runs: %w", err)
	}

	responses := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run, nil))
	}
	return responses, nil
}

// LockRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) LockRun(ctx context.Context, actor identity.Actor, id string) (payroll.RunResponse, error) {
	return s.transition(ctx, actor, id, payroll.RunStatusDraft, payroll.RunStatusLocked, "payroll.run_locked")
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, actor identity.Actor, id string) (payroll.RunResponse, error) {
	return s.transition(ctx, actor, id, payroll.RunStatusLocked, payroll.RunStatusPaid, "payroll.run_paid")
}

// DeleteRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteRun(ctx context.Context, actor identity.Actor, id string) error {
	if !actor.IsOwner() {
		return payroll.ErrPayrollForbidden
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if !run.Status.Mutable() {
		return payroll.ErrRunImmutable
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.PayrollItemRepository.DeleteByRun(txCtx, run.ID); err != nil {
			return fmt.Errorf("delete payroll items: %w", err)
		}
		return s.PayrollRunRepository.Delete(txCtx, run.ID, actor.CompanyID)
	})
	if err != nil {
		return err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "payroll.run_deleted",
		EntityType: "payroll_run",
		EntityID:   run.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(run),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return nil
}

// OverrideItem implements payroll.PayrollService. Gross and net are re-derived
// from the stored snapshot, and the run total follows.
func (s *PayrollServiceImpl) OverrideItem(ctx context.Context, actor identity.Actor, req payroll.OverrideItemRequest) (payroll.ItemResponse, error) {
	if !actor.IsOwner() {
		return payroll.ItemResponse{}, payroll.ErrPayrollForbidden
	}

	var item payroll.PayrollItem

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		item, err = s.PayrollItemRepository.GetByID(txCtx, req.ItemID)
		if err != nil {
			return err
		}
		run, err := s.PayrollRunRepository.GetByID(txCtx, item.PayrollRunID, actor.CompanyID)
		if err != nil {
			return err
		}
		if !run.Status.Mutable() {
			return payroll.ErrRunImmutable
		}

		if req.Allowances != nil {
			item.Allowances = *req.Allowances
		}
		if req.Bonuses != nil {
			item.Bonuses = *req.Bonuses
		}
		if req.Deductions != nil {
			item.Deductions = *req.Deductions
		}
		if req.Withholding != nil {
			item.Withholding = *req.Withholding
		}
		Rederive(&item)

		if err := s.PayrollItemRepository.Update(txCtx, item); err != nil {
			return fmt.Errorf("update payroll item: %w", err)
		}
		return s.refreshTotal(txCtx, run)
	})
	if err != nil {
		return payroll.ItemResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "payroll.item_overridden",
		EntityType: "payroll_item",
		EntityID:   item.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(item),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toItemResponse(item), nil
}

// RecomputeItem implements payroll.PayrollService. Computed components are
// rebuilt from current attendance and overtime; manual overrides survive.
func (s *PayrollServiceImpl) RecomputeItem(ctx context.Context, actor identity.Actor, itemID string) (payroll.ItemResponse, error) {
	if !actor.IsOwner() {
		return payroll.ItemResponse{}, payroll.ErrPayrollForbidden
	}

	var item payroll.PayrollItem

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		stored, err := s.PayrollItemRepository.GetByID(txCtx, itemID)
		if err != nil {
			return err
		}
		run, err := s.PayrollRunRepository.GetByID(txCtx, stored.PayrollRunID, actor.CompanyID)
		if err != nil {
			return err
		}
		if !run.Status.Mutable() {
			return payroll.ErrRunImmutable
		}

		emp, err := s.EmployeeRepository.GetByID(txCtx, stored.EmployeeID, actor.CompanyID)
		if err != nil {
			return err
		}
		cfg, err := s.policies.PayrollConfig(txCtx, actor.CompanyID)
		if err != nil {
			return err
		}

		fresh, err := s.buildItemFrom(txCtx, run, emp, cfg)
		if err != nil {
			return err
		}
		fresh.ID = stored.ID
		fresh.PayrollRunID = stored.PayrollRunID
		fresh.Allowances = stored.Allowances
		fresh.Bonuses = stored.Bonuses
		fresh.Deductions = stored.Deductions
		fresh.Withholding = stored.Withholding
		Rederive(&fresh)
		item = fresh

		if err := s.PayrollItemRepository.Update(txCtx, item); err != nil {
			return fmt.Errorf("update payroll item: %w", err)
		}
		return s.refreshTotal(txCtx, run)
	})
	if err != nil {
		return payroll.ItemResponse{}, err
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     "payroll.item_recomputed",
		EntityType: "payroll_item",
		EntityID:   item.ID,
		ActorID:    actor.EmployeeID,
		After:      audit.Snapshot(item),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toItemResponse(item), nil
}

func (s *PayrollServiceImpl) transition(ctx context.Context, actor identity.Actor, id string, from, to payroll.RunStatus, action string) (payroll.RunResponse, error) {
	if !actor.IsOwner() {
		return payroll.RunResponse{}, payroll.ErrPayrollForbidden
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if run.Status != from {
		return payroll.RunResponse{}, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidTransition, run.Status, to)
	}

	before := run
	run.Status = to
	if err := s.PayrollRunRepository.Update(ctx, run); err != nil {
		return payroll.RunResponse{}, fmt.Errorf("update payroll run: %w", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:     action,
		EntityType: "payroll_run",
		EntityID:   run.ID,
		ActorID:    actor.EmployeeID,
		Before:     audit.Snapshot(before),
		After:      audit.Snapshot(run),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})

	return toRunResponse(run, nil), nil
}

func (s *PayrollServiceImpl) buildItem(ctx context.Context, runID string, emp employee.Employee, cfg policy.PayrollConfig, year int, month time.Month) (payroll.PayrollItem, error) {
	records, err := s.AttendanceRepository.ListForPeriod(ctx, emp.ID, emp.CompanyID, year, month)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("list attendance for period: %w", err)
	}
	claims, err := s.OvertimeRepository.ListApprovedForPeriod(ctx, emp.ID, emp.CompanyID, year, month)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("list overtime for period: %w", err)
	}

	item := ComputeItem(Inputs{
		Employee:   emp,
		Config:     cfg,
		Attendance: records,
		Overtime:   claims,
	})
	item.ID = uuid.NewString()
	item.PayrollRunID = runID
	return item, nil
}

func (s *PayrollServiceImpl) buildItemFrom(ctx context.Context, run payroll.PayrollRun, emp employee.Employee, cfg policy.PayrollConfig) (payroll.PayrollItem, error) {
	return s.buildItem(ctx, run.ID, emp, cfg, run.PeriodYear, run.PeriodMonth)
}

// refreshTotal keeps the run total equal to the sum of its items' net pay.
func (s *PayrollServiceImpl) refreshTotal(ctx context.Context, run payroll.PayrollRun) error {
	items, err := s.PayrollItemRepository.ListByRun(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("list payroll items: %w", err)
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.NetPay)
	}
	run.TotalAmount = total
	return s.PayrollRunRepository.Update(ctx, run)
}

func toRunResponse(run payroll.PayrollRun, items []payroll.PayrollItem) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:          run.ID,
		PeriodYear:  run.PeriodYear,
		PeriodMonth: int(run.PeriodMonth),
		Status:      string(run.Status),
		TotalAmount: run.TotalAmount,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

func toItemResponse(item payroll.PayrollItem) payroll.ItemResponse {
	return payroll.ItemResponse{
		ID:                             item.ID,
		EmployeeID:                     item.EmployeeID,
		BasePay:                        item.BasePay,
		OvertimePay:                    item.OvertimePay,
		Allowances:                     item.Allowances,
		Bonuses:                        item.Bonuses,
		TransportAllowance:             item.TransportAllowance,
		LunchAllowance:                 item.LunchAllowance,
		HolidayBonus:                   item.HolidayBonus,
		Deductions:                     item.Deductions,
		GrossPay:                       item.GrossPay,
		EmployeeHealthContribution:     item.EmployeeHealthContribution,
		EmployerHealthContribution:     item.EmployerHealthContribution,
		EmployeeEmploymentContribution: item.EmployeeEmploymentContribution,
		EmployerEmploymentContribution: item.EmployerEmploymentContribution,
		Withholding:                    item.Withholding,
		NetPay:                         item.NetPay,
		Breakdown:                      item.Breakdown,
	}
}
