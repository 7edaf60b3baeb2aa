package cost_of_living

import (
	"encoding/json"
	"net/http"

	"github.com/balanco/balanco/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type LineItemDTO struct {
	Id       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll godoc
// @Summary List cost of living items
// @Tags CostOfLiving
// @Produce json
// @Success 200 {array} LineItemDTO
// @Router /api/cost-of-living [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Create godoc
// @Summary Create a cost of living item
// @Tags CostOfLiving
// @Accept json
// @Produce json
// @Param item body LineItemDTO true "Item"
// @Success 201 {object} LineItemDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/cost-of-living [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating cost of living item")

	var dto LineItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.service.Create(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Update godoc
// @Summary Update a cost of living item
// @Tags CostOfLiving
// @Accept json
// @Produce json
// @Param itemId path string true "Item id"
// @Param item body LineItemDTO true "Item"
// @Success 200 {object} LineItemDTO
// @Failure 404 {string} string "Item not found"
// @Router /api/cost-of-living/{itemId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	itemId := vars["itemId"]

	var dto LineItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != itemId {
		http.Error(w, "Invalid item id in request body", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Delete godoc
// @Summary Delete a cost of living item
// @Tags CostOfLiving
// @Param itemId path string true "Item id"
// @Success 204
// @Failure 404 {string} string "Item not found"
// @Router /api/cost-of-living/{itemId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemId := vars["itemId"]

	ok, err := h.service.Delete(r.Context(), itemId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(item LineItem) LineItemDTO {
	return LineItemDTO{
		Id:       item.Id,
		Category: item.Category,
		Name:     item.Name,
		Value:    item.Value,
	}
}

func fromDTO(dto LineItemDTO) LineItem {
	return LineItem{
		Id:       dto.Id,
		Category: dto.Category,
		Name:     dto.Name,
		Value:    dto.Value,
	}
}
