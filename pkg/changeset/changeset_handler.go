package changeset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanco/balanco/internal/rest"
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/user"
)

type ChangesDTO struct {
	Changes              []string `json:"changes"`
	RequiresConfirmation bool     `json:"requiresConfirmation"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ComputeChanges godoc
// @Summary Compute record changes
// @Description Diff the submitted record against the persisted snapshot before final submit
// @Tags Diagnostic
// @Accept json
// @Produce json
// @Param record body diagnostic.DiagnosticRecord true "Edited diagnostic record"
// @Success 200 {object} ChangesDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/diagnostic/changes [post]
func (h *Handler) ComputeChanges(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var submitted diagnostic.DiagnosticRecord
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	changes, err := h.service.ComputeChanges(r.Context(), submitted)
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(ChangesDTO{
		Changes:              changes,
		RequiresConfirmation: len(changes) > 0,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
