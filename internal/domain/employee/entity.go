package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	FullName       string
	JobTitle       *string
	Department     *string
	WorkEmail      string
	PrimaryPhone   *string
	EmploymentType EmploymentType
	IsActive       bool
	IsSuperAdmin   bool
	JoinedAt       *time.Time
	Employment     Employment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmploymentType string

const (
	EmploymentTypeCitizen         EmploymentType = "citizen"
	EmploymentTypeWorkPermit      EmploymentType = "workPermit"
	EmploymentTypeResidencePermit EmploymentType = "residencePermit"
	EmploymentTypeOther           EmploymentType = "other"
)

// Employment holds the compensation defaults consulted by payroll.
// All amounts default to zero; BaseSalary is optional because commission-only
// staff have none.
type Employment struct {
	BaseSalary        *decimal.Decimal
	PaymentMethod     string
	DefaultAllowances Allowances
	DefaultDeductions Deductions
}

type Allowances struct {
	Transport decimal.Decimal
	Meal      decimal.Decimal
	Housing   decimal.Decimal
	Other     decimal.Decimal
}

// Sum returns the combined monthly allowance amount.
func (a Allowances) Sum() decimal.Decimal {
	return a.Transport.Add(a.Meal).Add(a.Housing).Add(a.Other)
}

type Deductions struct {
	// TaxRate is a percentage applied to gross pay, not a flat amount.
	TaxRate   decimal.Decimal
	Insurance decimal.Decimal
	Pension   decimal.Decimal
	Loan      decimal.Decimal
	Other     decimal.Decimal
}

// SumFlat returns the combined flat deduction amount, excluding the tax rate.
func (d Deductions) SumFlat() decimal.Decimal {
	return d.Insurance.Add(d.Pension).Add(d.Loan).Add(d.Other)
}
