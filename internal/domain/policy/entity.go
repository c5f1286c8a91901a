package policy

import (
	"encoding/json"
	"time"
)

type PolicyType string

const (
	TypeAttendanceRules PolicyType = "ATTENDANCE_RULES"
	TypeOvertimePolicy  PolicyType = "OVERTIME_POLICY"
	TypeLeavePolicy     PolicyType = "LEAVE_POLICY"
	TypePayrollConfig   PolicyType = "PAYROLL_CONFIG"
)

// Policy is one versioned, company-scoped configuration row. Only the highest
// active version of each type applies; older rows are kept for audit.
type Policy struct {
	ID        string
	CompanyID string
	Type      PolicyType
	Version   int
	IsActive  bool
	Config    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
