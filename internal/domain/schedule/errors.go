package schedule

import "errors"

var (
	ErrSlotNotFound      = errors.New("shift schedule slot not found")
	ErrInvalidSlotKind   = errors.New("slot must be either recurring or date-specific, not both")
	ErrInvalidTimeWindow = errors.New("invalid shift time window")
	ErrSlotExists        = errors.New("an identical shift slot already exists")
	ErrScheduleForbidden = errors.New("not allowed to manage this employee's schedule")
)
