package postgresql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmployeeRow feeds scanEmployee the JSONB columns without a live
// database. Positions 12 and 13 are the allowance and deduction payloads;
// every other column keeps its zero value.
type stubEmployeeRow struct {
	allowances []byte
	deductions []byte
}

func (r stubEmployeeRow) Scan(dest ...any) error {
	if b, ok := dest[12].(*[]byte); ok {
		*b = r.allowances
	}
	if b, ok := dest[13].(*[]byte); ok {
		*b = r.deductions
	}
	return nil
}

func TestScanEmployeeDecodesCompensationDefaults(t *testing.T) {
	emp, err := scanEmployee(stubEmployeeRow{
		allowances: []byte(`{"transport": "150.00", "meal": 50}`),
		deductions: []byte(`{"taxRate": "10", "insurance": "25.50"}`),
	})
	require.NoError(t, err)

	assert.True(t, emp.Employment.DefaultAllowances.Sum().Equal(decimal.RequireFromString("200.00")))
	assert.True(t, emp.Employment.DefaultDeductions.TaxRate.Equal(decimal.RequireFromString("10")))
	assert.True(t, emp.Employment.DefaultDeductions.SumFlat().Equal(decimal.RequireFromString("25.50")))
}

func TestScanEmployeeNullDefaults(t *testing.T) {
	emp, err := scanEmployee(stubEmployeeRow{})
	require.NoError(t, err)

	assert.True(t, emp.Employment.DefaultAllowances.Sum().IsZero())
	assert.True(t, emp.Employment.DefaultDeductions.TaxRate.IsZero())
}

func TestScanEmployeeRejectsMalformedDefaults(t *testing.T) {
	_, err := scanEmployee(stubEmployeeRow{
		allowances: []byte(`{"transport":`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_allowances")

	_, err = scanEmployee(stubEmployeeRow{
		allowances: []byte(`{}`),
		deductions: []byte(`not json`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_deductions")
}
