package payroll

import (
	"context"
	"time"
)

// SettingRepository is the persistence port for compensation settings.
type SettingRepository interface {
	Create(ctx context.Context, setting CompensationSetting) (CompensationSetting, error)
	GetByID(ctx context.Context, id string) (CompensationSetting, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]CompensationSetting, error)
	Update(ctx context.Context, req UpdateSettingRequest) (CompensationSetting, error)

	// ListActiveByEmployee applies the activity predicate in the store:
	// is_active = true AND (end_date IS NULL OR end_date > now).
	ListActiveByEmployee(ctx context.Context, employeeID string, now time.Time) ([]CompensationSetting, error)
}

// RecordRepository is the persistence port for payroll records.
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	Update(ctx context.Context, record Record) (Record, error)

	// ExistsForSetting is the duplicate-check behind generation idempotence:
	// does any record for (employee, month, year) carry a line item produced
	// by the given setting.
	ExistsForSetting(ctx context.Context, employeeID, month string, year int, settingID string) (bool, error)
}
