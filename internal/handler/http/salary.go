package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SalaryHandler interface {
	GetDailySalary(w http.ResponseWriter, r *http.Request)
	ExportDailySalary(w http.ResponseWriter, r *http.Request)
	GetMonthlyHistory(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
	SyncUser(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewSalaryHandler(payrollService payroll.PayrollService) SalaryHandler {
	return &salaryHandlerImpl{payrollService: payrollService}
}

func dailySalaryFilter(r *http.Request) payroll.DailySalaryFilter {
	return payroll.DailySalaryFilter{
		UserID: chi.URLParam(r, "userId"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}
}

// ========== DAILY ==========

func (h *salaryHandlerImpl) GetDailySalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetDailySalary(r.Context(), dailySalaryFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ExportDailySalary(w http.ResponseWriter, r *http.Request) {
	filter := dailySalaryFilter(r)

	data, err := h.payrollService.ExportDailySalary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("daily-salary-%s.xlsx", filter.UserID)
	if filter.From != "" && filter.To != "" {
		filename = fmt.Sprintf("daily-salary-%s-%s-%s.xlsx", filter.UserID, filter.From, filter.To)
	}
	response.Attachment(w, filename, xlsxContentType, data)
}

// ========== MONTHLY ==========

func (h *salaryHandlerImpl) GetMonthlyHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.payrollService.GetMonthlyHistory(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== OVERVIEW ==========

func (h *salaryHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetOverview(r.Context(), dailySalaryFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SYNC ==========

func (h *salaryHandlerImpl) SyncUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.SyncUser(r.Context(), dailySalaryFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary snapshot refreshed", result)
}
