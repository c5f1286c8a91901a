package leave

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type fakeLeaveTypeRepo struct {
	leaveType leave.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(_ context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	return leaveType, nil
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string, companyID string) (leave.LeaveType, error) {
	if f.leaveType.ID != id || f.leaveType.CompanyID != companyID {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return f.leaveType, nil
}

func (f *fakeLeaveTypeRepo) ListByCompany(_ context.Context, _ string, _ bool) ([]leave.LeaveType, error) {
	return []leave.LeaveType{f.leaveType}, nil
}

func (f *fakeLeaveTypeRepo) Update(_ context.Context, _ leave.LeaveType) error {
	return nil
}

type fakeLeaveBalanceRepo struct {
	rows  []leave.LeaveBalance
	saved []leave.LeaveBalance
}

func (f *fakeLeaveBalanceRepo) Get(_ context.Context, employeeID, leaveTypeID string, year int, month time.Month) (leave.LeaveBalance, error) {
	for _, row := range f.rows {
		if row.EmployeeID == employeeID && row.LeaveTypeID == leaveTypeID &&
			row.PeriodYear == year && row.PeriodMonth == month {
			return row, nil
		}
	}
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (f *fakeLeaveBalanceRepo) GetLatestBefore(_ context.Context, employeeID, leaveTypeID string, year int, month time.Month) (leave.LeaveBalance, error) {
	var latest *leave.LeaveBalance
	for i := range f.rows {
		row := f.rows[i]
		if row.EmployeeID != employeeID || row.LeaveTypeID != leaveTypeID {
			continue
		}
		if row.PeriodYear > year || (row.PeriodYear == year && row.PeriodMonth >= month) {
			continue
		}
		if latest == nil || row.PeriodYear > latest.PeriodYear ||
			(row.PeriodYear == latest.PeriodYear && row.PeriodMonth > latest.PeriodMonth) {
			latest = &row
		}
	}
	if latest == nil {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return *latest, nil
}

func (f *fakeLeaveBalanceRepo) Upsert(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	f.saved = append(f.saved, balance)
	return balance, nil
}

type fakeLeaveRequestRepo struct {
	overlapping bool
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(_ context.Context, _ string, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrRequestNotFound
}

func (f *fakeLeaveRequestRepo) Update(_ context.Context, _ leave.LeaveRequest) error {
	return nil
}

func (f *fakeLeaveRequestRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeLeaveRequestRepo) ListByEmployee(_ context.Context, _ string, _ string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) HasOverlapping(_ context.Context, _ string, _, _ calendar.Date, _ string) (bool, error) {
	return f.overlapping, nil
}

type fakeEmployeeRepo struct {
	emp employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	if f.emp.ID != id || f.emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, _ string) ([]employee.Employee, error) {
	return []employee.Employee{f.emp}, nil
}

type fakeAttendanceRepo struct{}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string, _ string) (attendance.AttendanceRecord, error) {
	return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ calendar.Date, _ string) (attendance.AttendanceRecord, error) {
	return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Update(_ context.Context, _ attendance.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) ListForPeriod(_ context.Context, _ string, _ string, _ int, _ time.Month) ([]attendance.AttendanceRecord, error) {
	return nil, nil
}

type fakePolicies struct {
	leavePolicy policy.LeavePolicy
}

func (f *fakePolicies) AttendanceRules(_ context.Context, _ string) (policy.AttendanceRules, error) {
	return policy.DefaultAttendanceRules(), nil
}

func (f *fakePolicies) OvertimePolicy(_ context.Context, _ string) (policy.OvertimePolicy, error) {
	return policy.DefaultOvertimePolicy(), nil
}

func (f *fakePolicies) LeavePolicy(_ context.Context, _ string) (policy.LeavePolicy, error) {
	return f.leavePolicy, nil
}

func (f *fakePolicies) PayrollConfig(_ context.Context, _ string) (policy.PayrollConfig, error) {
	return policy.DefaultPayrollConfig(), nil
}

func (f *fakePolicies) Update(_ context.Context, _ identity.Actor, _ policy.PolicyType, _ json.RawMessage) (policy.Policy, error) {
	return policy.Policy{}, nil
}

func newBalanceFixture(t *testing.T, leaveType leave.LeaveType, stored []leave.LeaveBalance) (*LeaveServiceImpl, *fakeLeaveBalanceRepo, *fakeLeaveRequestRepo) {
	t.Helper()

	normalizer, err := calendar.NewNormalizer("UTC")
	require.NoError(t, err)

	balances := &fakeLeaveBalanceRepo{rows: stored}
	requests := &fakeLeaveRequestRepo{}
	emp := employee.Employee{
		ID:        "emp-1",
		CompanyID: "co-1",
		Role:      employee.RoleEmployee,
		IsActive:  true,
	}

	svc := NewLeaveService(
		nil,
		&fakeLeaveTypeRepo{leaveType: leaveType},
		balances,
		requests,
		&fakeEmployeeRepo{emp: emp},
		&fakeAttendanceRepo{},
		&fakePolicies{leavePolicy: policy.DefaultLeavePolicy()},
		normalizer,
		audit.NewRecorder(nil, nil),
	)
	return svc, balances, requests
}

func TestGetBalance_GapCarriesForwardStoredBalance(t *testing.T) {
	leaveType := leave.LeaveType{
		ID:             "lt-1",
		CompanyID:      "co-1",
		Name:           "Annual Leave",
		AccrualEnabled: true,
		AccrualRate:    decimal.NewFromInt(1),
		IsActive:       true,
	}
	stored := []leave.LeaveBalance{{
		ID:          "bal-march",
		EmployeeID:  "emp-1",
		LeaveTypeID: "lt-1",
		CompanyID:   "co-1",
		PeriodYear:  2026,
		PeriodMonth: time.March,
		Balance:     decimal.NewFromInt(10),
	}}
	svc, balances, _ := newBalanceFixture(t, leaveType, stored)
	actor := identity.Actor{EmployeeID: "emp-1", CompanyID: "co-1", Role: employee.RoleEmployee}

	got, err := svc.GetBalance(context.Background(), actor, "emp-1", "lt-1", 2026, time.June)
	require.NoError(t, err)

	assert.True(t, got.Balance.Equal(decimal.NewFromInt(11)), "balance = %s", got.Balance)
	assert.True(t, got.Expired.IsZero(), "expired = %s", got.Expired)
	require.Len(t, balances.saved, 1)
	assert.Equal(t, time.June, balances.saved[0].PeriodMonth)
}

func TestGetBalance_GapExpiresAgedBalance(t *testing.T) {
	leaveType := leave.LeaveType{
		ID:                 "lt-1",
		CompanyID:          "co-1",
		Name:               "Annual Leave",
		AccrualEnabled:     true,
		AccrualRate:        decimal.NewFromInt(1),
		ExpiresAfterMonths: 3,
		IsActive:           true,
	}
	stored := []leave.LeaveBalance{{
		ID:          "bal-march",
		EmployeeID:  "emp-1",
		LeaveTypeID: "lt-1",
		CompanyID:   "co-1",
		PeriodYear:  2026,
		PeriodMonth: time.March,
		Balance:     decimal.NewFromInt(10),
	}}
	svc, _, _ := newBalanceFixture(t, leaveType, stored)
	actor := identity.Actor{EmployeeID: "emp-1", CompanyID: "co-1", Role: employee.RoleEmployee}

	got, err := svc.GetBalance(context.Background(), actor, "emp-1", "lt-1", 2026, time.June)
	require.NoError(t, err)

	assert.True(t, got.Expired.Equal(decimal.NewFromInt(10)), "expired = %s", got.Expired)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(1)), "balance = %s", got.Balance)
}

func TestGetBalance_IntermediateRowStillWins(t *testing.T) {
	leaveType := leave.LeaveType{
		ID:             "lt-1",
		CompanyID:      "co-1",
		Name:           "Annual Leave",
		AccrualEnabled: true,
		AccrualRate:    decimal.NewFromInt(1),
		IsActive:       true,
	}
	stored := []leave.LeaveBalance{
		{
			ID: "bal-jan", EmployeeID: "emp-1", LeaveTypeID: "lt-1", CompanyID: "co-1",
			PeriodYear: 2026, PeriodMonth: time.January,
			Balance: decimal.NewFromInt(4),
		},
		{
			ID: "bal-may", EmployeeID: "emp-1", LeaveTypeID: "lt-1", CompanyID: "co-1",
			PeriodYear: 2026, PeriodMonth: time.May,
			Balance: decimal.NewFromInt(8),
		},
	}
	svc, _, _ := newBalanceFixture(t, leaveType, stored)
	actor := identity.Actor{EmployeeID: "emp-1", CompanyID: "co-1", Role: employee.RoleEmployee}

	got, err := svc.GetBalance(context.Background(), actor, "emp-1", "lt-1", 2026, time.June)
	require.NoError(t, err)

	assert.True(t, got.Balance.Equal(decimal.NewFromInt(9)), "balance = %s", got.Balance)
}

func TestSubmitRequest_OverlapRejected(t *testing.T) {
	leaveType := leave.LeaveType{
		ID:             "lt-1",
		CompanyID:      "co-1",
		Name:           "Annual Leave",
		AccrualEnabled: true,
		AccrualRate:    decimal.NewFromInt(10),
		IsActive:       true,
	}
	svc, _, requests := newBalanceFixture(t, leaveType, nil)
	requests.overlapping = true
	actor := identity.Actor{EmployeeID: "emp-1", CompanyID: "co-1", Role: employee.RoleEmployee}

	_, err := svc.SubmitRequest(context.Background(), actor, leave.SubmitLeaveRequest{
		LeaveTypeID: "lt-1",
		StartDate:   "2026-08-03",
		EndDate:     "2026-08-05",
		Reason:      "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}
