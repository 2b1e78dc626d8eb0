package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/metrics"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/service"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/storage"
)

type ImageHandler struct {
	inventoryService *service.InventoryService
	storage          storage.Storage
	maxUploadMB      int64
	logger           *zap.Logger
}

func NewImageHandler(inventoryService *service.InventoryService, store storage.Storage, maxUploadMB int64, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		inventoryService: inventoryService,
		storage:          store,
		maxUploadMB:      maxUploadMB,
		logger:           logger,
	}
}

// Upload godoc
// @Summary Upload tire image
// @Description Uploads an image and returns the stored blob name plus its public URL. Upload the image first, then reference the returned path in a tire create or update.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Success 201 {object} domain.ImageUploadResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 413 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /images [post]
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit request size
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondOperationError(w, http.StatusRequestEntityTooLarge, domain.ErrorTypeUpload,
			fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid file upload: file field is required",
		})
		return
	}
	defer file.Close()

	result, err := h.inventoryService.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			respondOperationError(w, http.StatusBadRequest, domain.ErrorTypeUpload, "Only image uploads are accepted")
			return
		}
		h.logger.Error("failed to upload image", zap.Error(err), zap.String("filename", header.Filename))
		respondOperationError(w, http.StatusInternalServerError, domain.ErrorTypeUpload, "Failed to upload image")
		return
	}

	metrics.RecordOperation("upload")
	metrics.RecordImageUpload(header.Size)
	respondJSON(w, http.StatusCreated, result)
}

// Serve streams a stored image back to the client. Only wired up for local
// storage mode; Supabase and Azure serve blobs from their own public URLs.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	reader, err := h.storage.Download(r.Context(), name)
	if err != nil {
		respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
			Error:   "Not Found",
			Message: "Image not found",
		})
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	_, _ = io.Copy(w, reader)
}
