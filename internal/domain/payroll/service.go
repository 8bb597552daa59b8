package payroll

import "context"

type PayrollService interface {
	// Settings
	CreateSetting(ctx context.Context, req CreateSettingRequest) (SettingResponse, error)
	GetSetting(ctx context.Context, id string) (SettingResponse, error)
	ListSettings(ctx context.Context, employeeID string) ([]SettingResponse, error)
	UpdateSetting(ctx context.Context, req UpdateSettingRequest) (SettingResponse, error)

	// Records
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordResponse, error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (RecordResponse, error)

	// Generate runs batch generation for one period across all eligible
	// employees. Per-item failures are reported in the result, not raised.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}
