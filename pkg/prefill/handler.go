package prefill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanco/balanco/pkg/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Prefill godoc
// @Summary Prefill the diagnostic record
// @Description Re-derive the debts and estimated expense lists from the user's debt mapping and cost of living data
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} diagnostic.DiagnosticRecord
// @Failure 403 {string} string "User not found"
// @Router /api/diagnostic/prefill [post]
func (h *Handler) Prefill(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	record, err := h.service.Prefill(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
