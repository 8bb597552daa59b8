package employee

import "context"

type EmployeeService interface {
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List returns the full directory, or only payroll-eligible employees
	// when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
}
