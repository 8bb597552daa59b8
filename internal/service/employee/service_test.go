package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	GetByIDFn    func(ctx context.Context, id string) (employee.Employee, error)
	ListFn       func(ctx context.Context) ([]employee.Employee, error)
	ListActiveFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.ListFn(ctx)
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return f.ListActiveFn(ctx)
}

func TestListReturnsFullDirectory(t *testing.T) {
	repo := &fakeEmployeeRepo{
		ListFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: "emp-1", FullName: "Ana Active", IsActive: true},
				{ID: "emp-2", FullName: "Ivo Inactive", IsActive: false},
				{ID: "emp-3", FullName: "Sam Super", IsActive: true, IsSuperAdmin: true},
			}, nil
		},
		ListActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
			t.Fatal("full listing must not hit the active-only query")
			return nil, nil
		},
	}

	svc := NewEmployeeService(repo)
	result, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, result, 3)
}

func TestListActiveOnlyUsesEligiblePopulation(t *testing.T) {
	repo := &fakeEmployeeRepo{
		ListFn: func(ctx context.Context) ([]employee.Employee, error) {
			t.Fatal("active-only listing must not fetch the full directory")
			return nil, nil
		},
		ListActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: "emp-1", FullName: "Ana Active", IsActive: true},
			}, nil
		},
	}

	svc := NewEmployeeService(repo)
	result, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "emp-1", result[0].ID)
	assert.True(t, result[0].IsActive)
}
