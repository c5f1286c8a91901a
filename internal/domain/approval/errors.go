package approval

import "errors"

var (
	ErrAlreadyProcessed      = errors.New("request has already been approved or rejected")
	ErrNotRequestOwner       = errors.New("only the original requester may modify this request")
	ErrOwnerApprovalRequired = errors.New("manager-submitted requests require owner approval")
	ErrNotDirectReport       = errors.New("managers may only decide requests of their direct reports")
	ErrApproverRoleRequired  = errors.New("approving requests requires a manager or owner role")
	ErrNotRejected           = errors.New("only rejected requests may be resubmitted")
	ErrResubmitNotAllowed    = errors.New("this request kind cannot be resubmitted")
	ErrRejectionReasonNeeded = errors.New("a rejection reason is required")
)
