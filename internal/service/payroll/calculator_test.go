package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func prorationEmployee(base string) *employee.Employee {
	salary := dec(base)
	return &employee.Employee{
		ID:       "emp-1",
		IsActive: true,
		Employment: employee.Employment{
			BaseSalary: &salary,
		},
	}
}

func TestProrationHalfMonth(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeProration)

	emp := prorationEmployee("3000")
	emp.Employment.DefaultDeductions.TaxRate = dec("10")

	record := payroll.Record{
		WorkDays: &payroll.WorkDays{TotalWorkingDays: 30, DaysWorked: 15},
	}
	calc.Apply(&record, emp)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.GrossPay.Equal(dec("1500.00")), "gross = %s", record.Totals.GrossPay)
	assert.True(t, record.Totals.TotalDeductions.Equal(dec("150.00")), "deductions = %s", record.Totals.TotalDeductions)
	assert.True(t, record.Totals.NetPay.Equal(dec("1350.00")), "net = %s", record.Totals.NetPay)
}

func TestProrationAllowancesAndAdjustments(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeProration)

	emp := prorationEmployee("6000")
	emp.Employment.DefaultAllowances = employee.Allowances{
		Transport: dec("100"),
		Meal:      dec("50.50"),
	}
	emp.Employment.DefaultDeductions = employee.Deductions{
		TaxRate:   dec("12.5"),
		Insurance: dec("75"),
	}

	record := payroll.Record{
		WorkDays: &payroll.WorkDays{TotalWorkingDays: 22, DaysWorked: 22},
		Adjustments: payroll.Adjustments{
			BonusAmount:     dec("200"),
			DeductionAmount: dec("30"),
			OvertimePay:     dec("80.25"),
		},
	}
	calc.Apply(&record, emp)

	require.NotNil(t, record.Totals)
	// gross = 6000 + 100 + 50.50 + 200 + 80.25
	assert.True(t, record.Totals.GrossPay.Equal(dec("6430.75")), "gross = %s", record.Totals.GrossPay)
	// deductions = 75 + 30 + 12.5% of gross = 105 + 803.84375, rounded
	assert.True(t, record.Totals.TotalDeductions.Equal(dec("908.84")), "deductions = %s", record.Totals.TotalDeductions)

	reconciled := record.Totals.GrossPay.Sub(record.Totals.TotalDeductions)
	assert.True(t, record.Totals.NetPay.Equal(reconciled), "net must equal gross minus deductions exactly")
}

func TestProrationNetAlwaysReconciles(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeProration)

	// 1000/3 per day forces repeating decimals through the whole pipeline.
	emp := prorationEmployee("1000")
	emp.Employment.DefaultDeductions.TaxRate = dec("7.77")

	record := payroll.Record{
		WorkDays: &payroll.WorkDays{TotalWorkingDays: 3, DaysWorked: 2},
	}
	calc.Apply(&record, emp)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.NetPay.Equal(record.Totals.GrossPay.Sub(record.Totals.TotalDeductions)))
	assert.GreaterOrEqual(t, record.Totals.NetPay.Exponent(), int32(-2), "net carries at most two decimal places")
}

func TestProrationMissingPrerequisites(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeProration)

	tests := []struct {
		name   string
		emp    *employee.Employee
		record payroll.Record
	}{
		{
			name:   "no base salary",
			emp:    &employee.Employee{},
			record: payroll.Record{WorkDays: &payroll.WorkDays{TotalWorkingDays: 20, DaysWorked: 20}},
		},
		{
			name:   "no work days snapshot",
			emp:    prorationEmployee("3000"),
			record: payroll.Record{},
		},
		{
			name:   "zero working days",
			emp:    prorationEmployee("3000"),
			record: payroll.Record{WorkDays: &payroll.WorkDays{TotalWorkingDays: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.Totals = &payroll.Totals{GrossPay: dec("999")}
			calc.Apply(&tt.record, tt.emp)
			assert.Nil(t, tt.record.Totals)
		})
	}
}

func TestLineItemTotal(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeLineItem)

	record := payroll.Record{
		Items: []payroll.LineItem{
			{Amount: dec("1000.50")},
			{Amount: dec("200.25")},
		},
		Adjustments: payroll.Adjustments{
			BonusAmount:     dec("100"),
			DeductionAmount: dec("50.75"),
		},
	}
	calc.Apply(&record, nil)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.TotalAmount.Equal(dec("1250.00")), "total = %s", record.Totals.TotalAmount)
}

func TestLineItemEmptyRecord(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeLineItem)

	record := payroll.Record{}
	calc.Apply(&record, nil)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.TotalAmount.IsZero())
}

func TestLineItemDiscardsCallerTotals(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeLineItem)

	record := payroll.Record{
		Items:  []payroll.LineItem{{Amount: dec("400")}},
		Totals: &payroll.Totals{TotalAmount: dec("123456")},
	}
	calc.Apply(&record, nil)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.TotalAmount.Equal(dec("400")))
}

func TestRoundingHalfAwayFromZero(t *testing.T) {
	calc := NewTotalsCalculator(config.CalcModeLineItem)

	record := payroll.Record{
		Items: []payroll.LineItem{
			{Amount: dec("3.335")},
			{Amount: dec("6.670")},
		},
	}
	calc.Apply(&record, nil)

	require.NotNil(t, record.Totals)
	assert.True(t, record.Totals.TotalAmount.Equal(dec("10.01")), "total = %s", record.Totals.TotalAmount)
}
