package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
)

var oneHundred = decimal.NewFromInt(100)

// TotalsCalculator recomputes a record's totals from its line items, manual
// adjustments and the employee's employment defaults. Totals supplied by a
// caller are always discarded; Apply runs on every create and update.
type TotalsCalculator struct {
	mode string
}

func NewTotalsCalculator(mode string) *TotalsCalculator {
	return &TotalsCalculator{mode: mode}
}

func (c *TotalsCalculator) Apply(record *payroll.Record, emp *employee.Employee) {
	switch c.mode {
	case config.CalcModeProration:
		c.applyProration(record, emp)
	default:
		c.applyLineItem(record)
	}
}

// applyProration derives earned salary proportionally from days worked.
// Missing base salary or work-day data is not an error; the record simply
// carries no totals until the prerequisites exist.
func (c *TotalsCalculator) applyProration(record *payroll.Record, emp *employee.Employee) {
	if emp == nil || emp.Employment.BaseSalary == nil || record.WorkDays == nil {
		record.Totals = nil
		return
	}
	if record.WorkDays.TotalWorkingDays <= 0 {
		record.Totals = nil
		return
	}

	baseSalary := *emp.Employment.BaseSalary
	totalWorkingDays := decimal.NewFromInt(int64(record.WorkDays.TotalWorkingDays))
	daysWorked := decimal.NewFromInt(int64(record.WorkDays.DaysWorked))

	dailySalary := baseSalary.Div(totalWorkingDays)
	earnedSalary := dailySalary.Mul(daysWorked)

	totalAllowances := emp.Employment.DefaultAllowances.Sum().
		Add(record.Adjustments.BonusAmount).
		Add(record.Adjustments.OvertimePay)

	grossPay := earnedSalary.Add(totalAllowances)

	taxAmount := grossPay.Mul(emp.Employment.DefaultDeductions.TaxRate).Div(oneHundred)
	totalDeductions := emp.Employment.DefaultDeductions.SumFlat().
		Add(record.Adjustments.DeductionAmount).
		Add(taxAmount)

	// Round gross and deductions to the cent first, then take net as their
	// difference so the three always reconcile exactly.
	roundedGross := round2(grossPay)
	roundedDeductions := round2(totalDeductions)

	record.Totals = &payroll.Totals{
		GrossPay:        roundedGross,
		TotalDeductions: roundedDeductions,
		NetPay:          roundedGross.Sub(roundedDeductions),
	}
}

// applyLineItem sums the generated items plus bonus minus deduction. Tax and
// allowance logic lives entirely in the compensation settings' amounts.
func (c *TotalsCalculator) applyLineItem(record *payroll.Record) {
	total := decimal.Zero
	for _, item := range record.Items {
		total = total.Add(item.Amount)
	}
	total = total.Add(record.Adjustments.BonusAmount).Sub(record.Adjustments.DeductionAmount)

	record.Totals = &payroll.Totals{
		TotalAmount: round2(total),
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
