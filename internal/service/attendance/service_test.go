package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
)

type fakeAttendanceStore struct {
	record attendance.AttendanceRecord
}

func (f *fakeAttendanceStore) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	return record, nil
}

func (f *fakeAttendanceStore) GetByID(_ context.Context, id string, companyID string) (attendance.AttendanceRecord, error) {
	if f.record.ID != id || f.record.CompanyID != companyID {
		return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
	}
	return f.record, nil
}

func (f *fakeAttendanceStore) GetByEmployeeAndDate(_ context.Context, _ string, _ calendar.Date, _ string) (attendance.AttendanceRecord, error) {
	return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceStore) Update(_ context.Context, _ attendance.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceStore) ListForPeriod(_ context.Context, _ string, _ string, _ int, _ time.Month) ([]attendance.AttendanceRecord, error) {
	return nil, nil
}

type fakeAdjustmentStore struct {
	created []attendance.AdjustmentRequest
}

func (f *fakeAdjustmentStore) Create(_ context.Context, request attendance.AdjustmentRequest) (attendance.AdjustmentRequest, error) {
	f.created = append(f.created, request)
	return request, nil
}

func (f *fakeAdjustmentStore) GetByID(_ context.Context, _ string, _ string) (attendance.AdjustmentRequest, error) {
	return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
}

func (f *fakeAdjustmentStore) GetActiveByRecord(_ context.Context, _ string) (attendance.AdjustmentRequest, error) {
	return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
}

func (f *fakeAdjustmentStore) GetLatestByRecord(_ context.Context, _ string) (attendance.AdjustmentRequest, error) {
	return attendance.AdjustmentRequest{}, attendance.ErrAdjustmentNotFound
}

func (f *fakeAdjustmentStore) Update(_ context.Context, _ attendance.AdjustmentRequest) error {
	return nil
}

func (f *fakeAdjustmentStore) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

type fakeDirectory struct {
	employees map[string]employee.Employee
}

func (f *fakeDirectory) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeDirectory) GetActiveByCompanyID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func newAdjustmentFixture(t *testing.T) (*AttendanceServiceImpl, *fakeAdjustmentStore) {
	t.Helper()

	normalizer, err := calendar.NewNormalizer("UTC")
	require.NoError(t, err)

	managerID := "mgr-1"
	directory := &fakeDirectory{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", CompanyID: "co-1", Role: employee.RoleEmployee, ManagerID: &managerID, IsActive: true},
		"emp-2": {ID: "emp-2", CompanyID: "co-1", Role: employee.RoleEmployee, IsActive: true},
		"mgr-1": {ID: "mgr-1", CompanyID: "co-1", Role: employee.RoleManager, IsActive: true},
	}}
	records := &fakeAttendanceStore{record: attendance.AttendanceRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		Date:       calendar.Date{Year: 2026, Month: time.August, Day: 10},
		Status:     attendance.StatusPresent,
	}}
	adjustments := &fakeAdjustmentStore{}

	svc := NewAttendanceService(
		nil,
		records,
		adjustments,
		directory,
		nil,
		nil,
		nil,
		normalizer,
		audit.NewRecorder(nil, nil),
	)
	return svc, adjustments
}

func adjustmentPayload() attendance.SubmitAdjustmentRequest {
	return attendance.SubmitAdjustmentRequest{
		AttendanceRecordID: "rec-1",
		ClockIn:            "2026-08-10T09:00:00Z",
		ClockOut:           "2026-08-10T17:00:00Z",
		Reason:             "forgot to clock out",
	}
}

func TestSubmitAdjustment_ManagerFilesForDirectReport(t *testing.T) {
	svc, adjustments := newAdjustmentFixture(t)
	actor := identity.Actor{EmployeeID: "mgr-1", CompanyID: "co-1", Role: employee.RoleManager}

	got, err := svc.SubmitAdjustment(context.Background(), actor, adjustmentPayload())
	require.NoError(t, err)

	assert.Equal(t, "mgr-1", got.RequesterID)
	require.Len(t, adjustments.created, 1)
	assert.Equal(t, "mgr-1", adjustments.created[0].RequesterID)
}

func TestSubmitAdjustment_ManagerOfAnotherTeamForbidden(t *testing.T) {
	svc, _ := newAdjustmentFixture(t)
	actor := identity.Actor{EmployeeID: "mgr-2", CompanyID: "co-1", Role: employee.RoleManager}

	_, err := svc.SubmitAdjustment(context.Background(), actor, adjustmentPayload())
	assert.ErrorIs(t, err, approval.ErrNotDirectReport)
}

func TestSubmitAdjustment_OtherEmployeeForbidden(t *testing.T) {
	svc, _ := newAdjustmentFixture(t)
	actor := identity.Actor{EmployeeID: "emp-2", CompanyID: "co-1", Role: employee.RoleEmployee}

	_, err := svc.SubmitAdjustment(context.Background(), actor, adjustmentPayload())
	assert.ErrorIs(t, err, approval.ErrNotRequestOwner)
}
