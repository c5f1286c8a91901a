package payroll

import "errors"

var (
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrRunExists         = errors.New("a payroll run already exists for this period")
	ErrRunImmutable      = errors.New("locked or paid payroll runs cannot be modified")
	ErrInvalidTransition = errors.New("invalid payroll run status transition")
	ErrItemNotFound      = errors.New("payroll item not found")
	ErrPayrollForbidden  = errors.New("only the company owner may manage payroll")
)
