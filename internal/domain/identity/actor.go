package identity

import "github.com/wagetime/wagetime-backend-go/internal/domain/employee"

// Actor is the already-authenticated caller of an engine operation. It is
// threaded explicitly into every service call; the engine never falls back to
// an implicit default tenant.
type Actor struct {
	EmployeeID string
	CompanyID  string
	Role       employee.Role

	// Request metadata forwarded to the audit sink.
	IPAddress *string
	UserAgent *string
}

func (a Actor) IsOwner() bool   { return a.Role == employee.RoleOwner }
func (a Actor) IsManager() bool { return a.Role == employee.RoleManager }
