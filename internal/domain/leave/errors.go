package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeInactive    = errors.New("leave type is not active")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrRequestNotFound      = errors.New("leave request not found")
	ErrOverlappingRequest   = errors.New("an overlapping leave request already exists")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrAttachmentRequired   = errors.New("this leave type requires an attachment")
	ErrInvalidDateRange     = errors.New("end date must not precede start date")
	ErrManualQuotaForbidden = errors.New("manual quota mode is not enabled for this company")
	ErrNameRequired         = errors.New("leave type name is required")
)
