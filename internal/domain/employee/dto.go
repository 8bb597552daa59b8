package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID             string           `json:"id"`
	FullName       string           `json:"full_name"`
	JobTitle       *string          `json:"job_title,omitempty"`
	Department     *string          `json:"department,omitempty"`
	WorkEmail      string           `json:"work_email"`
	PrimaryPhone   *string          `json:"primary_phone,omitempty"`
	EmploymentType string           `json:"employment_type"`
	IsActive       bool             `json:"is_active"`
	JoinedAt       *string          `json:"joined_at,omitempty"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentMethod  string           `json:"payment_method,omitempty"`
}
