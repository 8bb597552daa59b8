package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	settingRepo  payroll.SettingRepository
	recordRepo   payroll.RecordRepository
	employeeRepo employee.EmployeeRepository
	periodCalc   *PeriodCalculator
	calculator   *TotalsCalculator
	jwtService   jwt.Service
	logger       *slog.Logger
}

func NewPayrollService(
	settingRepo payroll.SettingRepository,
	recordRepo payroll.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	periodCalc *PeriodCalculator,
	calculator *TotalsCalculator,
	jwtService jwt.Service,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		settingRepo:  settingRepo,
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		periodCalc:   periodCalc,
		calculator:   calculator,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (s *PayrollServiceImpl) actor(ctx context.Context) (string, error) {
	actorID, err := s.jwtService.ActorID(ctx)
	if err != nil {
		return "", payroll.ErrUnauthenticated
	}
	return actorID, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) CreateSetting(ctx context.Context, req payroll.CreateSettingRequest) (payroll.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingResponse{}, err
	}
	if _, err := s.actor(ctx); err != nil {
		return payroll.SettingResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SettingResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		endDate = &parsed
	}

	method := payroll.PaymentMethod(req.Method)
	if method == "" {
		method = payroll.PaymentMethodBankTransfer
	}

	setting := payroll.CompensationSetting{
		EmployeeID:  req.EmployeeID,
		PayrollType: payroll.PayrollType(req.PayrollType),
		Description: req.Description,
		Amount:      req.Amount,
		Method:      method,
		IsActive:    true,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	created, err := s.settingRepo.Create(ctx, setting)
	if err != nil {
		return payroll.SettingResponse{}, err
	}

	return mapSettingResponse(created), nil
}

func (s *PayrollServiceImpl) GetSetting(ctx context.Context, id string) (payroll.SettingResponse, error) {
	setting, err := s.settingRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SettingResponse{}, err
	}
	return mapSettingResponse(setting), nil
}

func (s *PayrollServiceImpl) ListSettings(ctx context.Context, employeeID string) ([]payroll.SettingResponse, error) {
	settings, err := s.settingRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		result = append(result, mapSettingResponse(setting))
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdateSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingResponse{}, err
	}
	if _, err := s.actor(ctx); err != nil {
		return payroll.SettingResponse{}, err
	}

	updated, err := s.settingRepo.Update(ctx, req)
	if err != nil {
		return payroll.SettingResponse{}, err
	}

	return mapSettingResponse(updated), nil
}

// ========== RECORDS ==========

// CreateRecord is the manual single-record path: the record is seeded with
// line items for every currently-active setting, a work-days snapshot, and
// server-computed totals.
func (s *PayrollServiceImpl) CreateRecord(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	if _, err := s.actor(ctx); err != nil {
		return payroll.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record := payroll.Record{
		EmployeeID:  req.EmployeeID,
		Period:      payroll.Period{Month: req.Month, Year: req.Year},
		Adjustments: adjustmentsFromRequest(req.Adjustments),
		Status:      payroll.StatusGenerated,
	}

	workDays, err := s.workDaysSnapshot(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	record.WorkDays = workDays

	settings, err := s.settingRepo.ListActiveByEmployee(ctx, req.EmployeeID, time.Now())
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	PopulateItems(&record, settings)

	s.calculator.Apply(&record, &emp)

	created, err := s.recordRepo.Create(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, mapRecordResponse(record))
	}

	return payroll.ListRecordResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateRecord edits adjustments, payment details and status. Line items are
// re-checked against currently-active settings (append-only) and totals are
// recomputed; any totals supplied by the caller are ignored.
func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	actorID, err := s.actor(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	if req.Adjustments != nil {
		record.Adjustments = adjustmentsFromRequest(req.Adjustments)
	}
	if req.PaymentDetails != nil {
		applyPaymentDetails(&record, req.PaymentDetails)
	}
	if req.Status != nil {
		s.transition(&record, payroll.Status(*req.Status), actorID)
	}

	settings, err := s.settingRepo.ListActiveByEmployee(ctx, record.EmployeeID, time.Now())
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	PopulateItems(&record, settings)

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	s.calculator.Apply(&record, &emp)

	updated, err := s.recordRepo.Update(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	actorID, err := s.actor(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	s.transition(&record, payroll.Status(req.Status), actorID)

	updated, err := s.recordRepo.Update(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapRecordResponse(updated), nil
}

// transition applies a status change. The first move into a terminal status
// stamps processed_at and processed_by; transitions are otherwise
// unrestricted, matching the current product behavior.
func (s *PayrollServiceImpl) transition(record *payroll.Record, status payroll.Status, actorID string) {
	record.Status = status
	if status.Terminal() && record.ProcessedAt == nil {
		now := time.Now()
		record.ProcessedAt = &now
		record.ProcessedBy = &actorID
	}
}

// ========== GENERATION ==========

// Generate runs the monthly batch: for every active, non-super-admin
// employee, for each of their currently-active compensation settings, ensure
// exactly one payroll record exists for the period. The duplicate check is
// the sole correctness guard; re-running for the same period only fills in
// missing (employee, setting) combinations.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResult{}, err
	}
	if _, err := s.actor(ctx); err != nil {
		return payroll.GenerateResult{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.GenerateResult{}, fmt.Errorf("failed to fetch employee roster: %w", err)
	}

	s.logger.Info("payroll generation started",
		slog.String("month", req.Month),
		slog.Int("year", req.Year),
		slog.Int("employees", len(employees)),
	)

	result := payroll.GenerateResult{}
	now := time.Now()

	for _, emp := range employees {
		if !emp.IsActive || emp.IsSuperAdmin {
			continue
		}

		settings, err := s.settingRepo.ListActiveByEmployee(ctx, emp.ID, now)
		if err != nil {
			s.logger.Error("failed to fetch compensation settings",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, payroll.GenerationError{
				EmployeeID: emp.ID,
				Message:    err.Error(),
			})
			continue
		}

		workDays, err := s.workDaysSnapshot(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			s.logger.Error("failed to compute work days",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, payroll.GenerationError{
				EmployeeID: emp.ID,
				Message:    err.Error(),
			})
			continue
		}

		for _, setting := range settings {
			if !setting.ActiveAt(now) {
				continue
			}
			if err := s.generateForSetting(ctx, emp, setting, req.Month, req.Year, workDays, &result); err != nil {
				s.logger.Error("failed to create payroll record",
					slog.String("employee_id", emp.ID),
					slog.String("setting_id", setting.ID),
					slog.Any("error", err),
				)
				result.Errors = append(result.Errors, payroll.GenerationError{
					EmployeeID: emp.ID,
					SettingID:  setting.ID,
					Message:    err.Error(),
				})
			}
		}
	}

	s.logger.Info("payroll generation complete",
		slog.String("month", req.Month),
		slog.Int("year", req.Year),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

func (s *PayrollServiceImpl) generateForSetting(
	ctx context.Context,
	emp employee.Employee,
	setting payroll.CompensationSetting,
	month string,
	year int,
	workDays *payroll.WorkDays,
	result *payroll.GenerateResult,
) error {
	exists, err := s.recordRepo.ExistsForSetting(ctx, emp.ID, month, year, setting.ID)
	if err != nil {
		return fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		result.Skipped++
		return nil
	}

	record := payroll.Record{
		EmployeeID: emp.ID,
		Period:     payroll.Period{Month: month, Year: year},
		Items:      []payroll.LineItem{ItemFromSetting(setting)},
		Adjustments: payroll.Adjustments{
			BonusAmount:     decimal.Zero,
			DeductionAmount: decimal.Zero,
			OvertimePay:     decimal.Zero,
		},
		WorkDays: workDays,
		Status:   payroll.StatusGenerated,
	}
	s.calculator.Apply(&record, &emp)

	if _, err := s.recordRepo.Create(ctx, record); err != nil {
		// A concurrent run can win the duplicate check; the storage-level
		// uniqueness guard turns that into a skip, not a failure.
		if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
			result.Skipped++
			return nil
		}
		return err
	}

	result.Created++
	return nil
}

func (s *PayrollServiceImpl) workDaysSnapshot(ctx context.Context, employeeID, month string, year int) (*payroll.WorkDays, error) {
	totalWorkingDays, err := WorkingDaysInMonth(month, year)
	if err != nil {
		return nil, err
	}

	leaveDays, err := s.periodCalc.LeaveDays(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	return &payroll.WorkDays{
		TotalWorkingDays: totalWorkingDays,
		DaysWorked:       totalWorkingDays - leaveDays.UnpaidDays,
		LeaveDays:        leaveDays.Total,
	}, nil
}

// ========== HELPERS ==========

func adjustmentsFromRequest(req *payroll.AdjustmentsRequest) payroll.Adjustments {
	if req == nil {
		return payroll.Adjustments{
			BonusAmount:     decimal.Zero,
			DeductionAmount: decimal.Zero,
			OvertimePay:     decimal.Zero,
		}
	}
	return payroll.Adjustments{
		BonusAmount:     req.BonusAmount,
		DeductionAmount: req.DeductionAmount,
		OvertimePay:     req.OvertimePay,
		AdjustmentNote:  req.AdjustmentNote,
	}
}

func applyPaymentDetails(record *payroll.Record, req *payroll.PaymentDetailsRequest) {
	if req.PaymentDate != nil {
		if parsed, ok := validator.IsValidDate(*req.PaymentDate); ok {
			record.PaymentDetails.PaymentDate = &parsed
		}
	}
	if req.PaymentReference != nil {
		record.PaymentDetails.PaymentReference = req.PaymentReference
	}
	if req.PaymentNotes != nil {
		record.PaymentDetails.PaymentNotes = req.PaymentNotes
	}
}

func mapSettingResponse(s payroll.CompensationSetting) payroll.SettingResponse {
	var endDate *string
	if s.EndDate != nil {
		str := s.EndDate.Format("2006-01-02")
		endDate = &str
	}

	return payroll.SettingResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		PayrollType: string(s.PayrollType),
		Description: s.Description,
		Amount:      s.Amount,
		Method:      string(s.Method),
		IsActive:    s.IsActive,
		StartDate:   s.StartDate.Format("2006-01-02"),
		EndDate:     endDate,
	}
}

func mapRecordResponse(r payroll.Record) payroll.RecordResponse {
	items := make([]payroll.LineItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, payroll.LineItemResponse{
			SettingID:   item.SettingID,
			Description: item.Description,
			PayrollType: string(item.PayrollType),
			Amount:      item.Amount,
			Method:      string(item.Method),
		})
	}

	var totals *payroll.TotalsResponse
	if r.Totals != nil {
		totals = &payroll.TotalsResponse{
			GrossPay:        r.Totals.GrossPay,
			TotalDeductions: r.Totals.TotalDeductions,
			NetPay:          r.Totals.NetPay,
			TotalAmount:     r.Totals.TotalAmount,
		}
	}

	var processedAt *string
	if r.ProcessedAt != nil {
		str := r.ProcessedAt.Format(time.RFC3339)
		processedAt = &str
	}

	var paymentDate *string
	if r.PaymentDetails.PaymentDate != nil {
		str := r.PaymentDetails.PaymentDate.Format("2006-01-02")
		paymentDate = &str
	}

	return payroll.RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Month:        r.Period.Month,
		Year:         r.Period.Year,
		Items:        items,
		Adjustments: payroll.AdjustmentsRequest{
			BonusAmount:     r.Adjustments.BonusAmount,
			DeductionAmount: r.Adjustments.DeductionAmount,
			OvertimePay:     r.Adjustments.OvertimePay,
			AdjustmentNote:  r.Adjustments.AdjustmentNote,
		},
		WorkDays:         r.WorkDays,
		Totals:           totals,
		Status:           string(r.Status),
		ProcessedBy:      r.ProcessedBy,
		ProcessedAt:      processedAt,
		PaymentDate:      paymentDate,
		PaymentReference: r.PaymentDetails.PaymentReference,
		PaymentNotes:     r.PaymentDetails.PaymentNotes,
	}
}
