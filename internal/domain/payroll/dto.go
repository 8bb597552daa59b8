package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

// ========== SETTING DTOs ==========

type CreateSettingRequest struct {
	EmployeeID  string          `json:"employee_id"`
	PayrollType string          `json:"payroll_type"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"payment_method,omitempty"`
	StartDate   string          `json:"start_date"` // YYYY-MM-DD
	EndDate     *string         `json:"end_date,omitempty"`
}

func (r *CreateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !ValidPayrollType(PayrollType(r.PayrollType)) {
		errs = append(errs, validator.ValidationError{Field: "payroll_type", Message: "must be one of primary, bonus, overtime, commission, allowance, other"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Method != "" && !ValidPaymentMethod(PaymentMethod(r.Method)) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be one of bankTransfer, cash, cheque"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingRequest struct {
	ID          string
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Method      *string          `json:"payment_method,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Method != nil && !ValidPaymentMethod(PaymentMethod(*r.Method)) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be one of bankTransfer, cash, cheque"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PayrollType string          `json:"payroll_type"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"payment_method"`
	IsActive    bool            `json:"is_active"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
}

// ========== RECORD DTOs ==========

type GenerateRequest struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a two-digit month '01'..'12'"})
	}
	if r.Year < 2020 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentsRequest struct {
	BonusAmount     decimal.Decimal `json:"bonus_amount"`
	DeductionAmount decimal.Decimal `json:"deduction_amount"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	AdjustmentNote  *string         `json:"adjustment_note,omitempty"`
}

func (r *AdjustmentsRequest) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	if r.BonusAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "adjustments.bonus_amount", Message: "must be non-negative"})
	}
	if r.DeductionAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "adjustments.deduction_amount", Message: "must be non-negative"})
	}
	if r.OvertimePay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "adjustments.overtime_pay", Message: "must be non-negative"})
	}
	return errs
}

type CreateRecordRequest struct {
	EmployeeID  string              `json:"employee_id"`
	Month       string              `json:"month"`
	Year        int                 `json:"year"`
	Adjustments *AdjustmentsRequest `json:"adjustments,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a two-digit month '01'..'12'"})
	}
	if r.Year < 2020 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2100"})
	}
	if r.Adjustments != nil {
		errs = r.Adjustments.validate(errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentDetailsRequest struct {
	PaymentDate      *string `json:"payment_date,omitempty"` // YYYY-MM-DD
	PaymentReference *string `json:"payment_reference,omitempty"`
	PaymentNotes     *string `json:"payment_notes,omitempty"`
}

type UpdateRecordRequest struct {
	ID             string
	Adjustments    *AdjustmentsRequest    `json:"adjustments,omitempty"`
	PaymentDetails *PaymentDetailsRequest `json:"payment_details,omitempty"`
	Status         *string                `json:"status,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Adjustments != nil {
		errs = r.Adjustments.validate(errs)
	}
	if r.Status != nil && !ValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of generated, reviewed, approved, paid, cancelled"})
	}
	if r.PaymentDetails != nil && r.PaymentDetails.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDetails.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_details.payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of generated, reviewed, approved, paid, cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	Month      *string `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type LineItemResponse struct {
	SettingID   string          `json:"setting_id"`
	Description string          `json:"description"`
	PayrollType string          `json:"payroll_type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"payment_method"`
}

type TotalsResponse struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type RecordResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName *string            `json:"employee_name,omitempty"`
	Month        string             `json:"month"`
	Year         int                `json:"year"`
	Items        []LineItemResponse `json:"items"`
	Adjustments  AdjustmentsRequest `json:"adjustments"`
	WorkDays     *WorkDays          `json:"work_days,omitempty"`
	Totals       *TotalsResponse    `json:"totals,omitempty"`
	Status       string             `json:"status"`
	ProcessedBy  *string            `json:"processed_by,omitempty"`
	ProcessedAt  *string            `json:"processed_at,omitempty"`

	PaymentDate      *string `json:"payment_date,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`
	PaymentNotes     *string `json:"payment_notes,omitempty"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
