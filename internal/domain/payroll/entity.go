package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollType enum for compensation settings and line items
type PayrollType string

const (
	PayrollTypePrimary    PayrollType = "primary"
	PayrollTypeBonus      PayrollType = "bonus"
	PayrollTypeOvertime   PayrollType = "overtime"
	PayrollTypeCommission PayrollType = "commission"
	PayrollTypeAllowance  PayrollType = "allowance"
	PayrollTypeOther      PayrollType = "other"
)

func ValidPayrollType(t PayrollType) bool {
	switch t {
	case PayrollTypePrimary, PayrollTypeBonus, PayrollTypeOvertime,
		PayrollTypeCommission, PayrollTypeAllowance, PayrollTypeOther:
		return true
	}
	return false
}

// PaymentMethod enum
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bankTransfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheque       PaymentMethod = "cheque"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheque:
		return true
	}
	return false
}

// CompensationSetting - a configured, recurring pay component for one employee
type CompensationSetting struct {
	ID          string
	EmployeeID  string
	PayrollType PayrollType
	Description *string
	Amount      decimal.Decimal
	Method      PaymentMethod
	IsActive    bool
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActiveAt reports whether the setting should be expanded into payroll at
// the given generation time: active flag set and end date absent or still
// in the future.
func (s CompensationSetting) ActiveAt(now time.Time) bool {
	if !s.IsActive {
		return false
	}
	return s.EndDate == nil || s.EndDate.After(now)
}

// Status enum, see Record
type Status string

const (
	StatusGenerated Status = "generated"
	StatusReviewed  Status = "reviewed"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusGenerated, StatusReviewed, StatusApproved, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the record's lifecycle.
// Cancelled doubles as the soft-delete state; payroll never hard-deletes.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Period identifies the payroll month. Month is a two-digit string
// '01'..'12', matching how periods are keyed in the store.
type Period struct {
	Month string
	Year  int
}

// LineItem - a single amount-bearing entry within a payroll record,
// traceable to the compensation setting that produced it. Read-only once
// generated.
type LineItem struct {
	SettingID   string          `json:"setting_id"`
	Description string          `json:"description"`
	PayrollType PayrollType     `json:"payroll_type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"payment_method"`
}

// Adjustments - manual one-off amounts layered on top of generated items
type Adjustments struct {
	BonusAmount     decimal.Decimal
	DeductionAmount decimal.Decimal
	OvertimePay     decimal.Decimal
	AdjustmentNote  *string
}

// WorkDays - the period snapshot taken at generation time
type WorkDays struct {
	TotalWorkingDays int
	DaysWorked       int
	LeaveDays        int
}

// Totals are a pure function of items, adjustments and employment defaults.
// They are recomputed on every write and never trusted from caller input.
// GrossPay/TotalDeductions/NetPay are filled in proration mode, TotalAmount
// in line-item mode.
type Totals struct {
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	TotalAmount     decimal.Decimal
}

// PaymentDetails are only meaningful once a record reaches paid (notes also
// for cancelled). The lifecycle gates their presentation, not their presence.
type PaymentDetails struct {
	PaymentDate      *time.Time
	PaymentReference *string
	PaymentNotes     *string
}

// Record - one generated pay computation for an employee for a month/year
type Record struct {
	ID             string
	EmployeeID     string
	Period         Period
	Items          []LineItem
	Adjustments    Adjustments
	WorkDays       *WorkDays
	Totals         *Totals
	PaymentDetails PaymentDetails
	Status         Status
	ProcessedBy    *string
	ProcessedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// HasItemForSetting reports whether the record already carries a line item
// produced by the given compensation setting.
func (r *Record) HasItemForSetting(settingID string) bool {
	for _, item := range r.Items {
		if item.SettingID == settingID {
			return true
		}
	}
	return false
}

// GenerationError records one (employee, setting) pair that failed during a
// batch run without aborting it.
type GenerationError struct {
	EmployeeID string `json:"employee_id"`
	SettingID  string `json:"setting_id,omitempty"`
	Message    string `json:"message"`
}

// GenerateResult summarizes one batch generation run.
type GenerateResult struct {
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Errors  []GenerationError `json:"errors,omitempty"`
}
