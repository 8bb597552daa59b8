package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
)

func TestWorkingDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month string
		year  int
		want  int
	}{
		{name: "31-day month", month: "03", year: 2025, want: 23},
		{name: "30-day month", month: "04", year: 2025, want: 22},
		{name: "february", month: "02", year: 2025, want: 20},
		{name: "february leap year", month: "02", year: 2024, want: 21},
		{name: "december", month: "12", year: 2025, want: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkingDaysInMonth(tt.month, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDaysInMonthInvalid(t *testing.T) {
	for _, month := range []string{"", "13", "00", "march"} {
		_, err := WorkingDaysInMonth(month, 2025)
		assert.Error(t, err, "month %q", month)
	}
}

func TestPeriodBounds(t *testing.T) {
	from, to, err := PeriodBounds("03", 2025)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestLeaveDays(t *testing.T) {
	var gotFrom, gotTo time.Time
	leaveRepo := &fakeLeaveRepo{
		ListApprovedInRangeFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error) {
			gotFrom, gotTo = from, to
			return []leave.Record{
				{Type: leave.TypeUnpaid, TotalDays: 3},
				{Type: leave.TypeAnnual, TotalDays: 2},
			}, nil
		},
	}

	calc := NewPeriodCalculator(leaveRepo)
	summary, err := calc.LeaveDays(context.Background(), "emp-1", "06", 2025)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.UnpaidDays)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), gotTo)
}

func TestLeaveDaysNoRecords(t *testing.T) {
	calc := NewPeriodCalculator(&fakeLeaveRepo{})

	summary, err := calc.LeaveDays(context.Background(), "emp-1", "06", 2025)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.UnpaidDays)
}

func TestLeaveDaysRepoError(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{
		ListApprovedInRangeFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error) {
			return nil, errors.New("connection reset")
		},
	}

	calc := NewPeriodCalculator(leaveRepo)
	_, err := calc.LeaveDays(context.Background(), "emp-1", "06", 2025)
	assert.ErrorContains(t, err, "failed to list approved leaves")
}
