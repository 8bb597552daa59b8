package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01", "06", "09", "12"}
	for _, m := range valid {
		assert.True(t, IsValidMonth(m), "expected %q to be valid", m)
	}

	invalid := []string{"", "0", "1", "13", "00", "7", "january", "2025"}
	for _, m := range invalid {
		assert.False(t, IsValidMonth(m), "expected %q to be invalid", m)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-15")
	assert.True(t, ok)

	_, ok = IsValidDate("15-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be a two-digit month '01'..'12'"},
		{Field: "year", Message: "must be between 2020 and 2100"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "must be between 2020 and 2100", m["year"])
	assert.Contains(t, errs.Error(), "month:")
}
