package payroll

import "errors"

var (
	ErrSettingNotFound            = errors.New("compensation setting not found")
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this setting and period")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInvalidStatus              = errors.New("invalid payroll status")
	ErrUnauthenticated            = errors.New("authenticated actor required")
)
