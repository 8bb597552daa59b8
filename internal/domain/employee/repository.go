package employee

import "context"

// EmployeeRepository is the read-only persistence port for payroll and the
// directory endpoints. Payroll never mutates employees.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// ListActive returns employees with is_active = true and
	// is_super_admin = false, the population eligible for payroll generation.
	ListActive(ctx context.Context) ([]Employee, error)
}
