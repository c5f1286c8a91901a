package overtime

import "errors"

var (
	ErrRequestNotFound     = errors.New("overtime request not found")
	ErrDuplicateRequest    = errors.New("an active overtime request already exists for this date")
	ErrInvalidDuration     = errors.New("overtime duration must be positive")
	ErrInvalidCompensation = errors.New("compensation must be PAYOUT or TIME_OFF")
	ErrInvalidDate         = errors.New("invalid overtime date")
)
