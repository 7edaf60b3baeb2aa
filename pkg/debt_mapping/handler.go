package debt_mapping

import (
	"encoding/json"
	"net/http"

	"github.com/balanco/balanco/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DebtMapItemDTO struct {
	Id                    string  `json:"id"`
	Name                  string  `json:"name"`
	Creditor              string  `json:"creditor"`
	InstallmentValue      float64 `json:"installmentValue"`
	RemainingInstallments int     `json:"remainingInstallments"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll godoc
// @Summary List debt mapping items
// @Tags DebtMapping
// @Produce json
// @Success 200 {array} DebtMapItemDTO
// @Router /api/debt-mapping [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DebtMapItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Create godoc
// @Summary Create a debt mapping item
// @Tags DebtMapping
// @Accept json
// @Produce json
// @Param item body DebtMapItemDTO true "Item"
// @Success 201 {object} DebtMapItemDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/debt-mapping [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating debt mapping item")

	var dto DebtMapItemDTO
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
// @Summary Update a debt mapping item
// @Tags DebtMapping
// @Accept json
// @Produce json
// @Param itemId path string true "Item id"
// @Param item body DebtMapItemDTO true "Item"
// @Success 200 {object} DebtMapItemDTO
// @Failure 404 {string} string "Item not found"
// @Router /api/debt-mapping/{itemId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	itemId := vars["itemId"]

	var dto DebtMapItemDTO
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
// @Summary Delete a debt mapping item
// @Tags DebtMapping
// @Param itemId path string true "Item id"
// @Success 204
// @Failure 404 {string} string "Item not found"
// @Router /api/debt-mapping/{itemId} [delete]
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

func toDTO(item DebtMapItem) DebtMapItemDTO {
	return DebtMapItemDTO{
		Id:                    item.Id,
		Name:                  item.Name,
		Creditor:              item.Creditor,
		InstallmentValue:      item.InstallmentValue,
		RemainingInstallments: item.RemainingInstallments,
	}
}

func fromDTO(dto DebtMapItemDTO) DebtMapItem {
	return DebtMapItem{
		Id:                    dto.Id,
		Name:                  dto.Name,
		Creditor:              dto.Creditor,
		InstallmentValue:      dto.InstallmentValue,
		RemainingInstallments: dto.RemainingInstallments,
	}
}
