package insight

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balanco/balanco/pkg/user"
)

type InsightDTO struct {
	Message  string  `json:"message"`
	Analysis string  `json:"analysis"`
	Balance  float64 `json:"balance"`
	Bucket   string  `json:"bucket"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetInsight godoc
// @Summary Get the rotating insight message
// @Description Return a bucketed, non-repeating message for the user's current balance plus the cached analysis
// @Tags Insight
// @Produce json
// @Success 200 {object} InsightDTO
// @Failure 403 {string} string "User not found"
// @Router /api/insight [get]
func (h *Handler) GetInsight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := h.service.GetInsight(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := InsightDTO{
		Message:  result.Message,
		Analysis: result.Analysis,
		Balance:  result.Balance,
		Bucket:   string(result.Bucket),
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
