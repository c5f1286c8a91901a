package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
)

func emp(id string, role employee.Role, managerID *string) employee.Employee {
	return employee.Employee{ID: id, Role: role, ManagerID: managerID}
}

func strPtr(s string) *string { return &s }

func TestEnsurePending(t *testing.T) {
	assert.NoError(t, EnsurePending(StatusPending))
	assert.ErrorIs(t, EnsurePending(StatusApproved), ErrAlreadyProcessed)
	assert.ErrorIs(t, EnsurePending(StatusRejected), ErrAlreadyProcessed)
}

func TestAuthorizeDecision_ManagerOriginRequiresOwner(t *testing.T) {
	requester := emp("mgr-1", employee.RoleManager, nil)

	otherManager := emp("mgr-2", employee.RoleManager, nil)
	assert.ErrorIs(t, AuthorizeDecision(otherManager, requester), ErrOwnerApprovalRequired)

	owner := emp("own-1", employee.RoleOwner, nil)
	assert.NoError(t, AuthorizeDecision(owner, requester))
}

func TestAuthorizeDecision_ManagerOnlyForDirectReports(t *testing.T) {
	requester := emp("emp-1", employee.RoleEmployee, strPtr("mgr-1"))

	directManager := emp("mgr-1", employee.RoleManager, nil)
	assert.NoError(t, AuthorizeDecision(directManager, requester))

	unrelatedManager := emp("mgr-2", employee.RoleManager, nil)
	assert.ErrorIs(t, AuthorizeDecision(unrelatedManager, requester), ErrNotDirectReport)

	owner := emp("own-1", employee.RoleOwner, nil)
	assert.NoError(t, AuthorizeDecision(owner, requester))
}

func TestAuthorizeDecision_EmployeeCannotDecide(t *testing.T) {
	requester := emp("emp-1", employee.RoleEmployee, strPtr("mgr-1"))
	peer := emp("emp-2", employee.RoleEmployee, strPtr("mgr-1"))

	assert.ErrorIs(t, AuthorizeDecision(peer, requester), ErrApproverRoleRequired)
}

func TestAuthorizeModify(t *testing.T) {
	assert.NoError(t, AuthorizeModify("emp-1", "emp-1", StatusPending))
	assert.ErrorIs(t, AuthorizeModify("emp-2", "emp-1", StatusPending), ErrNotRequestOwner)
	assert.ErrorIs(t, AuthorizeModify("emp-1", "emp-1", StatusApproved), ErrAlreadyProcessed)
}

func TestAuthorizeResubmit(t *testing.T) {
	assert.NoError(t, AuthorizeResubmit(KindAttendanceAdjustment, "emp-1", "emp-1", StatusRejected))
	assert.ErrorIs(t, AuthorizeResubmit(KindLeave, "emp-1", "emp-1", StatusRejected), ErrResubmitNotAllowed)
	assert.ErrorIs(t, AuthorizeResubmit(KindOvertime, "emp-1", "emp-1", StatusRejected), ErrResubmitNotAllowed)
	assert.ErrorIs(t, AuthorizeResubmit(KindAttendanceAdjustment, "emp-2", "emp-1", StatusRejected), ErrNotRequestOwner)
	assert.ErrorIs(t, AuthorizeResubmit(KindAttendanceAdjustment, "emp-1", "emp-1", StatusPending), ErrNotRejected)
}
