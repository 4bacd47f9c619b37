package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Calculation
	PreviewPayroll(w http.ResponseWriter, r *http.Request)
	GeneratePayroll(w http.ResponseWriter, r *http.Request)

	// Records
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetStatutoryEstimate(w http.ResponseWriter, r *http.Request)

	// Settings
	ListSettings(w http.ResponseWriter, r *http.Request)
	UpdateSetting(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== CALCULATION ==========

func (h *payrollHandlerImpl) PreviewPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.PreviewPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record generated", result)
}

// ========== RECORDS ==========

func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayrollRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		Page:  1,
		Limit: 20,
	}

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	result, err := h.payrollService.ListPayrollRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func (h *payrollHandlerImpl) GetStatutoryEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	result, err := h.payrollService.GetStatutoryEstimate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SETTINGS ==========

func (h *payrollHandlerImpl) ListSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateSetting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
