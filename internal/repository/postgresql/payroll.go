package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

// ========== COMPENSATION SETTINGS ==========

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) payroll.SettingRepository {
	return &settingRepository{db: db}
}

const settingColumns = `
	id, employee_id, payroll_type, description, amount, payment_method,
	is_active, start_date, end_date, created_at, updated_at
`

func (r *settingRepository) Create(ctx context.Context, setting payroll.CompensationSetting) (payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_settings (employee_id, payroll_type, description, amount, payment_method, is_active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + settingColumns

	created, err := scanSetting(q.QueryRow(ctx, query,
		setting.EmployeeID, setting.PayrollType, setting.Description, setting.Amount,
		setting.Method, setting.IsActive, setting.StartDate, setting.EndDate,
	))
	if err != nil {
		return payroll.CompensationSetting{}, fmt.Errorf("failed to create compensation setting: %w", err)
	}

	return created, nil
}

func (r *settingRepository) GetByID(ctx context.Context, id string) (payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingColumns + ` FROM compensation_settings WHERE id = $1`

	setting, err := scanSetting(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CompensationSetting{}, payroll.ErrSettingNotFound
		}
		return payroll.CompensationSetting{}, fmt.Errorf("failed to get compensation setting: %w", err)
	}

	return setting, nil
}

func (r *settingRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingColumns + `
		FROM compensation_settings
		WHERE employee_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation settings: %w", err)
	}
	defer rows.Close()

	return collectSettings(rows)
}

func (r *settingRepository) ListActiveByEmployee(ctx context.Context, employeeID string, now time.Time) ([]payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingColumns + `
		FROM compensation_settings
		WHERE employee_id = $1
		  AND is_active = true
		  AND (end_date IS NULL OR end_date > $2)
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active compensation settings: %w", err)
	}
	defer rows.Close()

	return collectSettings(rows)
}

func (r *settingRepository) Update(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.CompensationSetting, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Method != nil {
		setParts = append(setParts, fmt.Sprintf("payment_method = $%d", argIdx))
		args = append(args, *req.Method)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if req.EndDate != nil {
		endDate, _ := validator.IsValidDate(*req.EndDate)
		setParts = append(setParts, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, endDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE compensation_settings
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setParts, ", "), settingColumns)

	updated, err := scanSetting(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CompensationSetting{}, payroll.ErrSettingNotFound
		}
		return payroll.CompensationSetting{}, fmt.Errorf("failed to update compensation setting: %w", err)
	}

	return updated, nil
}

func collectSettings(rows pgx.Rows) ([]payroll.CompensationSetting, error) {
	var settings []payroll.CompensationSetting
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation setting: %w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func scanSetting(row pgx.Row) (payroll.CompensationSetting, error) {
	var s payroll.CompensationSetting
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PayrollType, &s.Description, &s.Amount, &s.Method,
		&s.IsActive, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// ========== PAYROLL RECORDS ==========

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) payroll.RecordRepository {
	return &recordRepository{db: db}
}

// uk_payroll_item_setting_period is a unique index on the items table over
// (setting_id, period_month, period_year). It closes the window between the
// duplicate check and the insert when two generation runs race.
const itemSettingPeriodConstraint = "uk_payroll_item_setting_period"

const recordColumns = `
	pr.id, pr.employee_id, pr.period_month, pr.period_year,
	pr.bonus_amount, pr.deduction_amount, pr.overtime_pay, pr.adjustment_note,
	pr.total_working_days, pr.days_worked, pr.leave_days,
	pr.gross_pay, pr.total_deductions, pr.net_pay, pr.total_amount,
	pr.status, pr.processed_by, pr.processed_at,
	pr.payment_date, pr.payment_reference, pr.payment_notes,
	pr.created_at, pr.updated_at
`

func (r *recordRepository) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	var created payroll.Record

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO payroll_records (
				id, employee_id, period_month, period_year,
				bonus_amount, deduction_amount, overtime_pay, adjustment_note,
				total_working_days, days_worked, leave_days,
				gross_pay, total_deductions, net_pay, total_amount,
				status, processed_by, processed_at,
				payment_date, payment_reference, payment_notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			RETURNING ` + strings.ReplaceAll(recordColumns, "pr.", "")

		args := recordArgs(record)
		rec, err := scanRecord(q.QueryRow(txCtx, query, args...))
		if err != nil {
			return fmt.Errorf("failed to create payroll record: %w", err)
		}

		if err := insertItems(txCtx, q, rec.ID, record.Period, record.Items); err != nil {
			return err
		}

		rec.Items = record.Items
		created = rec
		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), itemSettingPeriodConstraint) {
			return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.Record{}, err
	}

	return created, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `, e.full_name AS employee_name
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	rec, err := scanRecordWithName(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	items, err := r.loadItems(ctx, []string{rec.ID})
	if err != nil {
		return payroll.Record{}, err
	}
	rec.Items = items[rec.ID]

	return rec, nil
}

func (r *recordRepository) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		%s
		ORDER BY pr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, recordColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	var ids []string
	for rows.Next() {
		rec, err := scanRecordWithName(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read payroll records: %w", err)
	}

	if len(ids) > 0 {
		itemsByRecord, err := r.loadItems(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range records {
			records[i].Items = itemsByRecord[records[i].ID]
		}
	}

	return records, totalCount, nil
}

func (r *recordRepository) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	var updated payroll.Record

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE payroll_records SET
				bonus_amount = $2, deduction_amount = $3, overtime_pay = $4, adjustment_note = $5,
				total_working_days = $6, days_worked = $7, leave_days = $8,
				gross_pay = $9, total_deductions = $10, net_pay = $11, total_amount = $12,
				status = $13, processed_by = $14, processed_at = $15,
				payment_date = $16, payment_reference = $17, payment_notes = $18,
				updated_at = NOW()
			WHERE id = $1
			RETURNING ` + strings.ReplaceAll(recordColumns, "pr.", "")

		totalWorkingDays, daysWorked, leaveDays := workDaysArgs(record.WorkDays)
		grossPay, totalDeductions, netPay, totalAmount := totalsArgs(record.Totals)

		rec, err := scanRecord(q.QueryRow(txCtx, query,
			record.ID,
			record.Adjustments.BonusAmount, record.Adjustments.DeductionAmount,
			record.Adjustments.OvertimePay, record.Adjustments.AdjustmentNote,
			totalWorkingDays, daysWorked, leaveDays,
			grossPay, totalDeductions, netPay, totalAmount,
			record.Status, record.ProcessedBy, record.ProcessedAt,
			record.PaymentDetails.PaymentDate, record.PaymentDetails.PaymentReference, record.PaymentDetails.PaymentNotes,
		))
		if err != nil {
			if err == pgx.ErrNoRows {
				return payroll.ErrPayrollRecordNotFound
			}
			return fmt.Errorf("failed to update payroll record: %w", err)
		}

		if err := replaceItems(txCtx, q, rec.ID, rec.Period, record.Items); err != nil {
			return err
		}

		rec.Items = record.Items
		rec.EmployeeName = record.EmployeeName
		updated = rec
		return nil
	})
	if err != nil {
		return payroll.Record{}, err
	}

	return updated, nil
}

func (r *recordRepository) ExistsForSetting(ctx context.Context, employeeID, month string, year int, settingID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM payroll_record_items i
			JOIN payroll_records pr ON i.record_id = pr.id
			WHERE pr.employee_id = $1 AND pr.period_month = $2 AND pr.period_year = $3 AND i.setting_id = $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year, settingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	return exists, nil
}

func replaceItems(ctx context.Context, q database.Querier, recordID string, period payroll.Period, items []payroll.LineItem) error {
	if _, err := q.Exec(ctx, `DELETE FROM payroll_record_items WHERE record_id = $1`, recordID); err != nil {
		return fmt.Errorf("failed to delete payroll record items: %w", err)
	}
	return insertItems(ctx, q, recordID, period, items)
}

// insertItems denormalizes the record's period onto each item row so the
// setting+period unique index can be enforced at the storage level.
func insertItems(ctx context.Context, q database.Querier, recordID string, period payroll.Period, items []payroll.LineItem) error {
	query := `
		INSERT INTO payroll_record_items (record_id, setting_id, description, payroll_type, amount, payment_method, period_month, period_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range items {
		_, err := q.Exec(ctx, query,
			recordID, item.SettingID, item.Description, item.PayrollType,
			item.Amount, item.Method, period.Month, period.Year,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payroll record item: %w", err)
		}
	}

	return nil
}

func (r *recordRepository) loadItems(ctx context.Context, recordIDs []string) (map[string][]payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_id, setting_id, description, payroll_type, amount, payment_method
		FROM payroll_record_items
		WHERE record_id = ANY($1)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll record items: %w", err)
	}
	defer rows.Close()

	itemsByRecord := make(map[string][]payroll.LineItem)
	for rows.Next() {
		var recordID string
		var item payroll.LineItem
		if err := rows.Scan(&recordID, &item.SettingID, &item.Description, &item.PayrollType, &item.Amount, &item.Method); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record item: %w", err)
		}
		itemsByRecord[recordID] = append(itemsByRecord[recordID], item)
	}

	return itemsByRecord, rows.Err()
}

func recordArgs(record payroll.Record) []interface{} {
	totalWorkingDays, daysWorked, leaveDays := workDaysArgs(record.WorkDays)
	grossPay, totalDeductions, netPay, totalAmount := totalsArgs(record.Totals)

	return []interface{}{
		record.ID, record.EmployeeID, record.Period.Month, record.Period.Year,
		record.Adjustments.BonusAmount, record.Adjustments.DeductionAmount,
		record.Adjustments.OvertimePay, record.Adjustments.AdjustmentNote,
		totalWorkingDays, daysWorked, leaveDays,
		grossPay, totalDeductions, netPay, totalAmount,
		record.Status, record.ProcessedBy, record.ProcessedAt,
		record.PaymentDetails.PaymentDate, record.PaymentDetails.PaymentReference, record.PaymentDetails.PaymentNotes,
	}
}

func workDaysArgs(w *payroll.WorkDays) (interface{}, interface{}, interface{}) {
	if w == nil {
		return nil, nil, nil
	}
	return w.TotalWorkingDays, w.DaysWorked, w.LeaveDays
}

func totalsArgs(t *payroll.Totals) (interface{}, interface{}, interface{}, interface{}) {
	if t == nil {
		return nil, nil, nil, nil
	}
	return t.GrossPay, t.TotalDeductions, t.NetPay, t.TotalAmount
}

func scanRecord(row pgx.Row) (payroll.Record, error) {
	return scanRecordRow(row, false)
}

func scanRecordWithName(row pgx.Row) (payroll.Record, error) {
	return scanRecordRow(row, true)
}

func scanRecordRow(row pgx.Row, withName bool) (payroll.Record, error) {
	var rec payroll.Record
	var totalWorkingDays, daysWorked, leaveDays *int
	var grossPay, totalDeductions, netPay, totalAmount decimal.NullDecimal

	fields := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.Period.Month, &rec.Period.Year,
		&rec.Adjustments.BonusAmount, &rec.Adjustments.DeductionAmount,
		&rec.Adjustments.OvertimePay, &rec.Adjustments.AdjustmentNote,
		&totalWorkingDays, &daysWorked, &leaveDays,
		&grossPay, &totalDeductions, &netPay, &totalAmount,
		&rec.Status, &rec.ProcessedBy, &rec.ProcessedAt,
		&rec.PaymentDetails.PaymentDate, &rec.PaymentDetails.PaymentReference, &rec.PaymentDetails.PaymentNotes,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withName {
		fields = append(fields, &rec.EmployeeName)
	}

	if err := row.Scan(fields...); err != nil {
		return payroll.Record{}, err
	}

	if totalWorkingDays != nil {
		rec.WorkDays = &payroll.WorkDays{
			TotalWorkingDays: *totalWorkingDays,
			DaysWorked:       derefInt(daysWorked),
			LeaveDays:        derefInt(leaveDays),
		}
	}
	if grossPay.Valid || totalAmount.Valid {
		rec.Totals = &payroll.Totals{
			GrossPay:        grossPay.Decimal,
			TotalDeductions: totalDeductions.Decimal,
			NetPay:          netPay.Decimal,
			TotalAmount:     totalAmount.Decimal,
		}
	}

	return rec, nil
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
