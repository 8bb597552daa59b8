package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, job_title, department, work_email, primary_phone,
	employment_type, is_active, is_super_admin, joined_at,
	base_salary, payment_method, default_allowances, default_deductions,
	created_at, updated_at
`

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = true AND is_super_admin = false
		ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var allowancesBytes, deductionsBytes []byte

	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.JobTitle, &emp.Department, &emp.WorkEmail, &emp.PrimaryPhone,
		&emp.EmploymentType, &emp.IsActive, &emp.IsSuperAdmin, &emp.JoinedAt,
		&emp.Employment.BaseSalary, &emp.Employment.PaymentMethod, &allowancesBytes, &deductionsBytes,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if len(allowancesBytes) > 0 {
		if err := json.Unmarshal(allowancesBytes, &emp.Employment.DefaultAllowances); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode default_allowances: %w", err)
		}
	}
	if len(deductionsBytes) > 0 {
		if err := json.Unmarshal(deductionsBytes, &emp.Employment.DefaultDeductions); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode default_deductions: %w", err)
		}
	}

	return emp, nil
}
