package attendance

import "errors"

var (
	// Clock-in/out errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrNoShiftScheduled  = errors.New("no shift is scheduled for today")
	ErrOutsideGeofence   = errors.New("you are outside the allowed clock-in area")

	// Record errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrRecordConflict = errors.New("an attendance record already exists for this day")

	// Adjustment errors
	ErrAdjustmentNotFound     = errors.New("adjustment request not found")
	ErrActiveAdjustmentExists = errors.New("an active adjustment request already exists for this record")
	ErrInvalidAdjustmentSpan  = errors.New("proposed clock-out must not precede clock-in")
	ErrReasonRequired         = errors.New("a reason is required for this request")
)
