package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/metrics"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/service"
)

type TireHandler struct {
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

func NewTireHandler(inventoryService *service.InventoryService, logger *zap.Logger) *TireHandler {
	return &TireHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// List godoc
// @Summary List tires
// @Description Returns all tire records, newest first. An optional search term filters on brand, model, size or SKU (case-insensitive substring match).
// @Tags Tires
// @Produce json
// @Param search query string false "Filter on brand, model, size or SKU"
// @Success 200 {object} domain.TireListResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires [get]
func (h *TireHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	tires, err := h.inventoryService.List(r.Context(), search)
	if err != nil {
		h.logger.Error("failed to list tires", zap.Error(err))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeFetch, "Failed to fetch tire records")
		return
	}

	respondJSON(w, http.StatusOK, tires)
}

// GetByID godoc
// @Summary Get tire
// @Description Get a single tire record by ID
// @Tags Tires
// @Produce json
// @Param id path string true "Tire ID" format(uuid)
// @Success 200 {object} domain.TireDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires/{id} [get]
func (h *TireHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid tire ID format",
		})
		return
	}

	tire, err := h.inventoryService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTireNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tire record not found",
			})
			return
		}
		h.logger.Error("failed to get tire", zap.Error(err), zap.String("tire_id", id.String()))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeFetch, "Failed to fetch tire record")
		return
	}

	respondJSON(w, http.StatusOK, tire)
}

// Create godoc
// @Summary Create tire
// @Description Create a new tire record. Quantity defaults to 1 and condition to "New" when omitted; price and quantity accept numbers or numeric strings.
// @Tags Tires
// @Accept json
// @Produce json
// @Param request body domain.CreateTireRequest true "Tire data"
// @Success 201 {object} domain.TireDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires [post]
func (h *TireHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tire, err := h.inventoryService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create tire", zap.Error(err))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeSave, "Failed to save tire record")
		return
	}

	metrics.RecordOperation("create")
	w.Header().Set("Location", "/api/v1/tires/"+tire.ID.String())
	respondJSON(w, http.StatusCreated, tire)
}

// Update godoc
// @Summary Update tire
// @Description Replace a tire record. All fields are overwritten with the submitted values; omitted numeric fields become zero.
// @Tags Tires
// @Accept json
// @Produce json
// @Param id path string true "Tire ID" format(uuid)
// @Param request body domain.UpdateTireRequest true "Tire data"
// @Success 200 {object} domain.TireDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires/{id} [put]
func (h *TireHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid tire ID format",
		})
		return
	}

	var req domain.UpdateTireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tire, err := h.inventoryService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTireNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tire record not found",
			})
			return
		}
		h.logger.Error("failed to update tire", zap.Error(err), zap.String("tire_id", id.String()))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeSave, "Failed to save tire record")
		return
	}

	metrics.RecordOperation("update")
	respondJSON(w, http.StatusOK, tire)
}

// Delete godoc
// @Summary Delete tire
// @Description Delete a tire record and its stored image. Deletion only happens through this explicit call.
// @Tags Tires
// @Produce json
// @Param id path string true "Tire ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires/{id} [delete]
func (h *TireHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid tire ID format",
		})
		return
	}

	if err := h.inventoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTireNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tire record not found",
			})
			return
		}
		h.logger.Error("failed to delete tire", zap.Error(err), zap.String("tire_id", id.String()))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeDelete, "Failed to delete tire record")
		return
	}

	metrics.RecordOperation("delete")
	w.WriteHeader(http.StatusNoContent)
}

// Stats godoc
// @Summary Inventory stats
// @Description Returns the total item count (sum of quantities) and the number of distinct records across the whole inventory.
// @Tags Tires
// @Produce json
// @Success 200 {object} domain.InventoryStatsDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires/stats [get]
func (h *TireHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inventoryService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute inventory stats", zap.Error(err))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeFetch, "Failed to fetch inventory stats")
		return
	}

	metrics.UpdateInventoryLevels(stats.TotalItems, stats.SKUCount)
	respondJSON(w, http.StatusOK, stats)
}

// Export godoc
// @Summary Export inventory as CSV
// @Description Downloads the full inventory as a CSV file. Every field is quoted; embedded quotes are doubled.
// @Tags Tires
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} domain.ErrorResponse
// @Router /tires/export [get]
func (h *TireHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.inventoryService.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("failed to export inventory", zap.Error(err))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeFetch, "Failed to export inventory")
		return
	}

	metrics.RecordOperation("export")
	filename := "tire_inventory_" + time.Now().Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
