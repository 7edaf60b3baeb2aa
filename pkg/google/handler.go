package google

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ProfileDTO struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	PictureUrl string `json:"pictureUrl"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetProfile godoc
// @Summary Get the linked Google profile
// @Tags Google
// @Produce json
// @Success 200 {object} ProfileDTO
// @Failure 401 {string} string "Google authentication required"
// @Router /api/integrations/google/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			http.Error(w, "Google authentication required", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := ProfileDTO{
		Email:      profile.Email,
		Name:       profile.Name,
		PictureUrl: profile.PictureUrl,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
