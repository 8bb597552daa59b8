package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (employee_id, type, start_date, end_date, total_days, status, reason, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, type, start_date, end_date, total_days, status, reason, note, created_at, updated_at
	`

	var rec leave.Record
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Type, record.StartDate, record.EndDate,
		record.TotalDays, record.Status, record.Reason, record.Note,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Type, &rec.StartDate, &rec.EndDate,
		&rec.TotalDays, &rec.Status, &rec.Reason, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return rec, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, total_days, status, reason, note, created_at, updated_at
		FROM leave_records
		WHERE id = $1
	`

	var rec leave.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Type, &rec.StartDate, &rec.EndDate,
		&rec.TotalDays, &rec.Status, &rec.Reason, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Record{}, leave.ErrLeaveRecordNotFound
		}
		return leave.Record{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	return rec, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, total_days, status, reason, note, created_at, updated_at
		FROM leave_records
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	return collectLeaveRecords(rows)
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_records
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, type, start_date, end_date, total_days, status, reason, note, created_at, updated_at
	`

	var rec leave.Record
	err := q.QueryRow(ctx, query, id, status).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Type, &rec.StartDate, &rec.EndDate,
		&rec.TotalDays, &rec.Status, &rec.Reason, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Record{}, leave.ErrLeaveRecordNotFound
		}
		return leave.Record{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return rec, nil
}

func (r *leaveRepository) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, total_days, status, reason, note, created_at, updated_at
		FROM leave_records
		WHERE employee_id = $1 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave records: %w", err)
	}
	defer rows.Close()

	return collectLeaveRecords(rows)
}

func collectLeaveRecords(rows pgx.Rows) ([]leave.Record, error) {
	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Type, &rec.StartDate, &rec.EndDate,
			&rec.TotalDays, &rec.Status, &rec.Reason, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
