package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/user"
)

type TotalsDTO struct {
	Income            float64 `json:"income"`
	FixedExpenses     float64 `json:"fixedExpenses"`
	EstimatedExpenses float64 `json:"estimatedExpenses"`
	CardInstallments  float64 `json:"cardInstallments"`
	Debts             float64 `json:"debts"`
	Balance           float64 `json:"balance"`
}

type ReportDTO struct {
	Record diagnostic.DiagnosticRecord `json:"record"`
	Totals TotalsDTO                   `json:"totals"`
}

type Handler struct {
	service  Service
	renderer ReportRenderer
}

func NewHandler(service Service, renderer ReportRenderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// GetReport godoc
// @Summary Get the diagnostic report
// @Description Return the record and its derived totals. With Accept text/csv the report is rendered as CSV.
// @Tags Report
// @Produce json
// @Produce text/csv
// @Success 200 {object} ReportDTO
// @Failure 403 {string} string "User not found"
// @Router /api/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetReport(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		h.writeCsv(w, result)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetReportCsv godoc
// @Summary Download the diagnostic report as CSV
// @Tags Report
// @Produce text/csv
// @Success 200 {string} string "CSV report"
// @Failure 403 {string} string "User not found"
// @Router /api/report/csv [get]
func (h *Handler) GetReportCsv(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetReport(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCsv(w, result)
}

func (h *Handler) writeCsv(w http.ResponseWriter, result Report) {
	rendered, err := h.renderer.RenderReport(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"balanco.csv\"")
	if _, err := w.Write([]byte(rendered)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func toDTO(result Report) ReportDTO {
	return ReportDTO{
		Record: result.Record,
		Totals: TotalsDTO{
			Income:            result.Totals.Income.InexactFloat64(),
			FixedExpenses:     result.Totals.FixedExpenses.InexactFloat64(),
			EstimatedExpenses: result.Totals.EstimatedExpenses.InexactFloat64(),
			CardInstallments:  result.Totals.CardInstallments.InexactFloat64(),
			Debts:             result.Totals.Debts.InexactFloat64(),
			Balance:           result.Totals.Balance.InexactFloat64(),
		},
	}
}
