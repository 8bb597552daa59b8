package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Record, error)

	// ListApprovedInRange returns approved leave records for the employee
	// whose date range intersects [from, to].
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
