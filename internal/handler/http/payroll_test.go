package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type fakePayrollService struct {
	CreateSettingFn func(ctx context.Context, req payroll.CreateSettingRequest) (payroll.SettingResponse, error)
	GetSettingFn    func(ctx context.Context, id string) (payroll.SettingResponse, error)
	ListSettingsFn  func(ctx context.Context, employeeID string) ([]payroll.SettingResponse, error)
	UpdateSettingFn func(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.SettingResponse, error)
	CreateRecordFn  func(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error)
	GetRecordFn     func(ctx context.Context, id string) (payroll.RecordResponse, error)
	ListRecordsFn   func(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error)
	UpdateRecordFn  func(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error)
	UpdateStatusFn  func(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.RecordResponse, error)
	GenerateFn      func(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error)
}

func (f *fakePayrollService) CreateSetting(ctx context.Context, req payroll.CreateSettingRequest) (payroll.SettingResponse, error) {
	return f.CreateSettingFn(ctx, req)
}

func (f *fakePayrollService) GetSetting(ctx context.Context, id string) (payroll.SettingResponse, error) {
	return f.GetSettingFn(ctx, id)
}

func (f *fakePayrollService) ListSettings(ctx context.Context, employeeID string) ([]payroll.SettingResponse, error) {
	return f.ListSettingsFn(ctx, employeeID)
}

func (f *fakePayrollService) UpdateSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.SettingResponse, error) {
	return f.UpdateSettingFn(ctx, req)
}

func (f *fakePayrollService) CreateRecord(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	return f.CreateRecordFn(ctx, req)
}

func (f *fakePayrollService) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	return f.GetRecordFn(ctx, id)
}

func (f *fakePayrollService) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
	return f.ListRecordsFn(ctx, filter)
}

func (f *fakePayrollService) UpdateRecord(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	return f.UpdateRecordFn(ctx, req)
}

func (f *fakePayrollService) UpdateStatus(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.RecordResponse, error) {
	return f.UpdateStatusFn(ctx, req)
}

func (f *fakePayrollService) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
	return f.GenerateFn(ctx, req)
}

func newPayrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	handler := NewPayrollHandler(svc)

	r := chi.NewRouter()
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/generate", handler.Generate)
		r.Get("/", handler.ListRecords)
		r.Get("/{id}", handler.GetRecord)
		r.Patch("/{id}/status", handler.UpdateStatus)
	})
	return r
}

func TestGenerateEndpoint(t *testing.T) {
	svc := &fakePayrollService{
		GenerateFn: func(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
			assert.Equal(t, "03", req.Month)
			assert.Equal(t, 2025, req.Year)
			return payroll.GenerateResult{Created: 4, Skipped: 2}, nil
		},
	}

	body := bytes.NewBufferString(`{"month":"03","year":2025}`)
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", body)
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Created int `json:"created"`
			Skipped int `json:"skipped"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.Data.Created)
	assert.Equal(t, 2, resp.Data.Skipped)
}

func TestGenerateEndpointBadBody(t *testing.T) {
	svc := &fakePayrollService{
		GenerateFn: func(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
			t.Fatal("service must not be called on a malformed body")
			return payroll.GenerateResult{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpointValidationError(t *testing.T) {
	svc := &fakePayrollService{
		GenerateFn: func(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
			return payroll.GenerateResult{}, validator.ValidationErrors{
				{Field: "month", Message: "must be a two-digit month '01'..'12'"},
			}
		},
	}

	body := bytes.NewBufferString(`{"month":"13","year":2025}`)
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", body)
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestGetRecordEndpointNotFound(t *testing.T) {
	svc := &fakePayrollService{
		GetRecordFn: func(ctx context.Context, id string) (payroll.RecordResponse, error) {
			return payroll.RecordResponse{}, payroll.ErrPayrollRecordNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payroll/rec-missing", nil)
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestUpdateStatusEndpointUsesURLParam(t *testing.T) {
	svc := &fakePayrollService{
		UpdateStatusFn: func(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.RecordResponse, error) {
			assert.Equal(t, "rec-1", req.ID)
			assert.Equal(t, "paid", req.Status)
			return payroll.RecordResponse{ID: req.ID, Status: req.Status}, nil
		},
	}

	body := bytes.NewBufferString(`{"status":"paid"}`)
	req := httptest.NewRequest(http.MethodPatch, "/payroll/rec-1/status", body)
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"paid"`)
}

func TestListRecordsEndpointParsesFilters(t *testing.T) {
	svc := &fakePayrollService{
		ListRecordsFn: func(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
			require.NotNil(t, filter.Month)
			assert.Equal(t, "03", *filter.Month)
			require.NotNil(t, filter.Year)
			assert.Equal(t, 2025, *filter.Year)
			require.NotNil(t, filter.Status)
			assert.Equal(t, "generated", *filter.Status)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 10, filter.Limit)
			return payroll.ListRecordResponse{
				Data:       []payroll.RecordResponse{},
				TotalCount: 25,
				Page:       2,
				Limit:      10,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payroll/?month=03&year=2025&status=generated&page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	newPayrollTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":25`)
	assert.Contains(t, rec.Body.String(), `"total_pages":3`)
}
