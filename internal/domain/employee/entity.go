package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

type EmploymentType string

const (
	EmploymentMonthly EmploymentType = "MONTHLY"
	EmploymentHourly  EmploymentType = "HOURLY"
	EmploymentDaily   EmploymentType = "DAILY"
)

// Employee is the directory record the engine consumes. The engine never
// mutates it; employee CRUD belongs to the directory service.
type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Role      Role
	ManagerID *string

	EmploymentType EmploymentType
	BaseSalary     *decimal.Decimal
	HourlyRate     *decimal.Decimal
	DailyRate      *decimal.Decimal

	HealthInsuranceEnrolled     bool
	EmploymentInsuranceEnrolled bool

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDirectReportOf reports whether e reports directly to managerID.
func (e Employee) IsDirectReportOf(managerID string) bool {
	return e.ManagerID != nil && *e.ManagerID == managerID
}
