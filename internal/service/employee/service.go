package employee

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	var employees []employee.Employee
	var err error
	if activeOnly {
		employees, err = s.employeeRepo.ListActive(ctx)
	} else {
		employees, err = s.employeeRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeResponse(emp))
	}
	return result, nil
}

func mapEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	var joinedAt *string
	if e.JoinedAt != nil {
		str := e.JoinedAt.Format("2006-01-02")
		joinedAt = &str
	}

	return employee.EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		JobTitle:       e.JobTitle,
		Department:     e.Department,
		WorkEmail:      e.WorkEmail,
		PrimaryPhone:   e.PrimaryPhone,
		EmploymentType: string(e.EmploymentType),
		IsActive:       e.IsActive,
		JoinedAt:       joinedAt,
		BaseSalary:     e.Employment.BaseSalary,
		PaymentMethod:  e.Employment.PaymentMethod,
	}
}
