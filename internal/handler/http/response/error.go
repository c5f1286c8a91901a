package response

import (
	"errors"
	"net/http"

	"github.com/wagetime/wagetime-backend-go/internal/domain/approval"
	"github.com/wagetime/wagetime-backend-go/internal/domain/attendance"
	"github.com/wagetime/wagetime-backend-go/internal/domain/company"
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/leave"
	"github.com/wagetime/wagetime-backend-go/internal/domain/overtime"
	"github.com/wagetime/wagetime-backend-go/internal/domain/payroll"
	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/domain/schedule"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Approval workflow errors
	case errors.Is(err, approval.ErrAlreadyProcessed):
		Conflict(w, "Request has already been processed")
	case errors.Is(err, approval.ErrNotRequestOwner),
		errors.Is(err, approval.ErrOwnerApprovalRequired),
		errors.Is(err, approval.ErrNotDirectReport),
		errors.Is(err, approval.ErrApproverRoleRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, approval.ErrNotRejected),
		errors.Is(err, approval.ErrResubmitNotAllowed):
		Conflict(w, err.Error())
	case errors.Is(err, approval.ErrRejectionReasonNeeded):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrRecordConflict),
		errors.Is(err, attendance.ErrActiveAdjustmentExists):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrNoShiftScheduled),
		errors.Is(err, attendance.ErrInvalidAdjustmentSpan),
		errors.Is(err, attendance.ErrReasonRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideGeofence):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment request not found")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrGeofenceNotConfigured):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrLeaveTypeInactive),
		errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrAttachmentRequired),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrNameRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrManualQuotaForbidden):
		Forbidden(w, err.Error())

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrDuplicateRequest):
		Conflict(w, err.Error())
	case errors.Is(err, overtime.ErrInvalidDuration),
		errors.Is(err, overtime.ErrInvalidCompensation),
		errors.Is(err, overtime.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrRunExists),
		errors.Is(err, payroll.ErrRunImmutable),
		errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPayrollForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Policy not found")
	case errors.Is(err, policy.ErrMalformedPolicy),
		errors.Is(err, policy.ErrUnknownType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, policy.ErrOwnerOnly):
		Forbidden(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Shift schedule slot not found")
	case errors.Is(err, schedule.ErrSlotExists):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrInvalidSlotKind),
		errors.Is(err, schedule.ErrInvalidTimeWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrScheduleForbidden):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
