package diagnostic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanco/balanco/internal/rest"
	"github.com/balanco/balanco/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetDiagnostic godoc
// @Summary Get diagnostic record
// @Description Load the user's diagnostic record merged with the default template
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} DiagnosticRecord
// @Failure 403 {string} string "User not found"
// @Router /api/diagnostic [get]
func (h *Handler) GetDiagnostic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	record, err := h.service.GetDiagnostic(r.Context())
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

// SaveDiagnostic godoc
// @Summary Save diagnostic record
// @Description Persist the user's diagnostic record after a wizard step
// @Tags Diagnostic
// @Accept json
// @Produce json
// @Param record body DiagnosticRecord true "Diagnostic record"
// @Success 200 {object} DiagnosticRecord
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/diagnostic [put]
func (h *Handler) SaveDiagnostic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Saving diagnostic record")

	var record DiagnosticRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	saved, err := h.service.SaveDiagnostic(r.Context(), record)
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(saved); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
