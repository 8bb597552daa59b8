package leave

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create stores a new leave request. TotalDays is always recomputed from the
// date range; a value sent by the client is ignored.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	record := leave.Record{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  leave.InclusiveDays(startDate, endDate),
		Status:     leave.StatusRequested,
		Reason:     req.Reason,
		Note:       req.Note,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveResponse(record), nil
}

func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	records, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapLeaveResponse(record))
	}
	return result, nil
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveResponse(updated), nil
}

func mapLeaveResponse(r leave.Record) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		TotalDays:  r.TotalDays,
		Status:     string(r.Status),
		Reason:     r.Reason,
		Note:       r.Note,
	}
}
