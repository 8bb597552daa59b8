package payroll

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
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

type fakeSettingRepo struct {
	CreateFn               func(ctx context.Context, setting payroll.CompensationSetting) (payroll.CompensationSetting, error)
	GetByIDFn              func(ctx context.Context, id string) (payroll.CompensationSetting, error)
	ListByEmployeeFn       func(ctx context.Context, employeeID string) ([]payroll.CompensationSetting, error)
	UpdateFn               func(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.CompensationSetting, error)
	ListActiveByEmployeeFn func(ctx context.Context, employeeID string, now time.Time) ([]payroll.CompensationSetting, error)
}

func (f *fakeSettingRepo) Create(ctx context.Context, setting payroll.CompensationSetting) (payroll.CompensationSetting, error) {
	return f.CreateFn(ctx, setting)
}

func (f *fakeSettingRepo) GetByID(ctx context.Context, id string) (payroll.CompensationSetting, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeSettingRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.CompensationSetting, error) {
	return f.ListByEmployeeFn(ctx, employeeID)
}

func (f *fakeSettingRepo) Update(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.CompensationSetting, error) {
	return f.UpdateFn(ctx, req)
}

func (f *fakeSettingRepo) ListActiveByEmployee(ctx context.Context, employeeID string, now time.Time) ([]payroll.CompensationSetting, error) {
	return f.ListActiveByEmployeeFn(ctx, employeeID, now)
}

type fakeRecordRepo struct {
	CreateFn           func(ctx context.Context, record payroll.Record) (payroll.Record, error)
	GetByIDFn          func(ctx context.Context, id string) (payroll.Record, error)
	ListFn             func(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error)
	UpdateFn           func(ctx context.Context, record payroll.Record) (payroll.Record, error)
	ExistsForSettingFn func(ctx context.Context, employeeID, month string, year int, settingID string) (bool, error)
}

func (f *fakeRecordRepo) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	return f.CreateFn(ctx, record)
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeRecordRepo) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeRecordRepo) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	return f.UpdateFn(ctx, record)
}

func (f *fakeRecordRepo) ExistsForSetting(ctx context.Context, employeeID, month string, year int, settingID string) (bool, error) {
	return f.ExistsForSettingFn(ctx, employeeID, month, year, settingID)
}

type fakeLeaveRepo struct {
	ListApprovedInRangeFn func(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	return record, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Record, error) {
	return leave.Record{}, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.Record, error) {
	return leave.Record{}, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error) {
	if f.ListApprovedInRangeFn == nil {
		return nil, nil
	}
	return f.ListApprovedInRangeFn(ctx, employeeID, from, to)
}

type fakeJWTService struct {
	actorID string
	err     error
}

func (f *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (f *fakeJWTService) ActorID(ctx context.Context) (string, error) {
	return f.actorID, f.err
}

func (f *fakeJWTService) IsSuperAdmin(ctx context.Context) bool { return false }
