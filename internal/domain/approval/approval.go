package approval

import (
	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type RequestKind string

const (
	KindAttendanceAdjustment RequestKind = "ATTENDANCE_ADJUSTMENT"
	KindLeave                RequestKind = "LEAVE"
	KindOvertime             RequestKind = "OVERTIME"
)

// EnsurePending guards every transition: only PENDING requests may be
// approved, rejected, updated or deleted.
func EnsurePending(status Status) error {
	if status != StatusPending {
		return ErrAlreadyProcessed
	}
	return nil
}

// AuthorizeDecision enforces the escalation rule for approve/reject:
//   - a request originally submitted by a manager may only be decided by the owner
//   - otherwise a manager may decide only for their direct reports
//   - the owner may always decide
func AuthorizeDecision(approver employee.Employee, requester employee.Employee) error {
	if requester.Role == employee.RoleManager {
		if approver.Role != employee.RoleOwner {
			return ErrOwnerApprovalRequired
		}
		return nil
	}

	switch approver.Role {
	case employee.RoleOwner:
		return nil
	case employee.RoleManager:
		if !requester.IsDirectReportOf(approver.ID) {
			return ErrNotDirectReport
		}
		return nil
	default:
		return ErrApproverRoleRequired
	}
}

// AuthorizeModify guards update and delete: only the original requester may
// touch a request, and only while it is still pending.
func AuthorizeModify(actorID, requesterID string, status Status) error {
	if actorID != requesterID {
		return ErrNotRequestOwner
	}
	return EnsurePending(status)
}

// AuthorizeResubmit guards the REJECTED -> PENDING overwrite, which exists
// for attendance adjustments only.
func AuthorizeResubmit(kind RequestKind, actorID, requesterID string, status Status) error {
	if kind != KindAttendanceAdjustment {
		return ErrResubmitNotAllowed
	}
	if actorID != requesterID {
		return ErrNotRequestOwner
	}
	if status != StatusRejected {
		return ErrNotRejected
	}
	return nil
}
