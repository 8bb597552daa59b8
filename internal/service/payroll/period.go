package payroll

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
)

// LeaveSummary aggregates an employee's approved leave within one period.
type LeaveSummary struct {
	Total      int
	UnpaidDays int
}

// PeriodCalculator derives working-day counts and leave-day deductions for
// a payroll period from approved leave records. Pure read + arithmetic.
type PeriodCalculator struct {
	leaveRepo leave.LeaveRepository
}

func NewPeriodCalculator(leaveRepo leave.LeaveRepository) *PeriodCalculator {
	return &PeriodCalculator{leaveRepo: leaveRepo}
}

// LeaveDays sums TotalDays over approved leave records whose date range
// intersects the target calendar month. UnpaidDays counts only unpaid leave;
// other approved types count toward the total but do not reduce pay.
func (c *PeriodCalculator) LeaveDays(ctx context.Context, employeeID, month string, year int) (LeaveSummary, error) {
	from, to, err := PeriodBounds(month, year)
	if err != nil {
		return LeaveSummary{}, err
	}

	records, err := c.leaveRepo.ListApprovedInRange(ctx, employeeID, from, to)
	if err != nil {
		return LeaveSummary{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	var summary LeaveSummary
	for _, r := range records {
		summary.Total += r.TotalDays
		if r.Type == leave.TypeUnpaid {
			summary.UnpaidDays += r.TotalDays
		}
	}

	return summary, nil
}

// WorkingDaysInMonth estimates working days as calendar days minus
// floor(days/7)*2 weekend days. A deliberate approximation: it ignores
// public holidays and partial weeks.
func WorkingDaysInMonth(month string, year int) (int, error) {
	days, err := daysInMonth(month, year)
	if err != nil {
		return 0, err
	}
	weekends := (days / 7) * 2
	return days - weekends, nil
}

// PeriodBounds returns the first and last day of the period's calendar month.
func PeriodBounds(month string, year int) (time.Time, time.Time, error) {
	m, err := monthNumber(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}

func daysInMonth(month string, year int) (int, error) {
	m, err := monthNumber(month)
	if err != nil {
		return 0, err
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(m+1), 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

func monthNumber(month string) (int, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("invalid period month %q", month)
	}
	return m, nil
}
