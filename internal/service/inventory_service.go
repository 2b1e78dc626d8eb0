package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/mapper"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/repository"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/storage"
)

// InventoryService owns the tire record operations: listing with search,
// create/update/delete, aggregates, CSV export, and image upload. All
// dependencies are injected; failures are returned to the caller and never
// take the service down.
type InventoryService struct {
	tireRepo *repository.TireRepository
	storage  storage.Storage
	logger   *zap.Logger
}

func NewInventoryService(
	tireRepo *repository.TireRepository,
	storage storage.Storage,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		tireRepo: tireRepo,
		storage:  storage,
		logger:   logger,
	}
}

// List returns the full inventory, newest first, optionally narrowed by a
// search term. Filtering happens in the store with the same semantics the
// listing screen applies: case-insensitive substring across brand, model,
// size and sku.
func (s *InventoryService) List(ctx context.Context, search string) (*domain.TireListResponse, error) {
	records, err := s.tireRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list tire records: %w", err)
	}

	dtos := make([]domain.TireDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, mapper.ToTireDTO(&records[i], s.imageURL(&records[i])))
	}

	return &domain.TireListResponse{
		Data:  dtos,
		Total: int64(len(records)),
	}, nil
}

func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TireDTO, error) {
	tire, err := s.tireRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTireNotFound
		}
		return nil, fmt.Errorf("failed to get tire record: %w", err)
	}

	dto := mapper.ToTireDTO(tire, s.imageURL(tire))
	return &dto, nil
}

// Create inserts a new record. An omitted quantity defaults to 1 and an
// omitted condition to "New"; submitted blanks have already been coerced
// to zero by the request decoding.
func (s *InventoryService) Create(ctx context.Context, req *domain.CreateTireRequest) (*domain.TireDTO, error) {
	quantity := domain.DefaultQuantity
	if req.Quantity != nil {
		quantity = req.Quantity.Int()
	}

	condition := strings.TrimSpace(req.Condition)
	if condition == "" {
		condition = domain.ConditionNew
	}

	tire := &domain.TireRecord{
		SKU:       req.SKU,
		Brand:     req.Brand,
		Model:     req.Model,
		Size:      req.Size,
		Ply:       req.Ply,
		Condition: condition,
		Price:     req.Price.Float64(),
		Quantity:  quantity,
		Notes:     req.Notes,
		ImagePath: req.ImagePath,
	}

	if err := s.tireRepo.Create(ctx, tire); err != nil {
		return nil, fmt.Errorf("failed to create tire record: %w", err)
	}

	s.logger.Info("Tire record created",
		zap.String("id", tire.ID.String()),
		zap.String("sku", tire.SKU),
	)

	dto := mapper.ToTireDTO(tire, s.imageURL(tire))
	return &dto, nil
}

// Update overwrites every user-editable field of an existing record and
// bumps its updated timestamp. When the image reference changes, the
// previous blob is unreferenced and deleted best-effort; the record update
// itself never fails because of storage cleanup.
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTireRequest) (*domain.TireDTO, error) {
	tire, err := s.tireRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTireNotFound
		}
		return nil, fmt.Errorf("failed to get tire record: %w", err)
	}

	oldImage := tire.ImagePath

	tire.SKU = req.SKU
	tire.Brand = req.Brand
	tire.Model = req.Model
	tire.Size = req.Size
	tire.Ply = req.Ply
	tire.Condition = req.Condition
	tire.Price = req.Price.Float64()
	tire.Quantity = req.Quantity.Int()
	tire.Notes = req.Notes
	tire.ImagePath = req.ImagePath

	if err := s.tireRepo.Update(ctx, tire); err != nil {
		return nil, fmt.Errorf("failed to update tire record: %w", err)
	}

	if oldImage != nil && (tire.ImagePath == nil || *tire.ImagePath != *oldImage) {
		if delErr := s.storage.Delete(ctx, *oldImage); delErr != nil {
			s.logger.Warn("failed to delete replaced image from storage",
				zap.Error(delErr),
				zap.String("blobName", *oldImage),
			)
		}
	}

	dto := mapper.ToTireDTO(tire, s.imageURL(tire))
	return &dto, nil
}

// Delete removes exactly the targeted record. Its image blob is deleted
// best-effort first; a storage failure is logged and does not block the
// record removal.
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	tire, err := s.tireRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTireNotFound
		}
		return fmt.Errorf("failed to get tire record: %w", err)
	}

	if tire.ImagePath != nil {
		if delErr := s.storage.Delete(ctx, *tire.ImagePath); delErr != nil {
			s.logger.Warn("failed to delete image from storage",
				zap.Error(delErr),
				zap.String("blobName", *tire.ImagePath),
				zap.String("id", id.String()),
			)
		}
	}

	if err := s.tireRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tire record: %w", err)
	}

	s.logger.Info("Tire record deleted",
		zap.String("id", id.String()),
		zap.String("sku", tire.SKU),
	)

	return nil
}

// Stats aggregates over all records regardless of any search filter:
// total item count is the quantity sum, SKU count the number of records.
func (s *InventoryService) Stats(ctx context.Context) (*domain.InventoryStatsDTO, error) {
	totalItems, err := s.tireRepo.TotalQuantity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum quantities: %w", err)
	}

	skuCount, err := s.tireRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	dto := mapper.ToInventoryStatsDTO(&domain.InventoryStats{
		TotalItems: totalItems,
		SKUCount:   skuCount,
	})
	return &dto, nil
}

// UploadImage stores an image blob and returns its generated name together
// with the public URL. The caller references the name in a subsequent
// create or update; a record write that never happens leaves the blob
// orphaned, which is accepted.
func (s *InventoryService) UploadImage(ctx context.Context, filename, contentType string, data io.Reader) (*domain.ImageUploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedImageType
	}

	blobName, size, err := s.storage.Upload(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Tire image uploaded",
		zap.String("blobName", blobName),
		zap.String("originalFilename", filename),
		zap.Int64("size", size),
	)

	return &domain.ImageUploadResponse{
		Path: blobName,
		URL:  s.storage.PublicURL(blobName),
	}, nil
}

// ExportCSV renders the complete inventory, in listing order, as a CSV
// document.
func (s *InventoryService) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.tireRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list tire records: %w", err)
	}

	return mapper.ToInventoryCSV(records), nil
}

func (s *InventoryService) imageURL(tire *domain.TireRecord) string {
	if tire.ImagePath == nil || *tire.ImagePath == "" {
		return ""
	}
	return s.storage.PublicURL(*tire.ImagePath)
}
