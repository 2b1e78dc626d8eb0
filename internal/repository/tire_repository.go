package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
)

type TireRepository struct {
	db *gorm.DB
}

func NewTireRepository(db *gorm.DB) *TireRepository {
	return &TireRepository{db: db}
}

func (r *TireRepository) Create(ctx context.Context, tire *domain.TireRecord) error {
	return r.db.WithContext(ctx).Create(tire).Error
}

func (r *TireRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TireRecord, error) {
	var tire domain.TireRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tire).Error
	if err != nil {
		return nil, err
	}
	return &tire, nil
}

func (r *TireRepository) Update(ctx context.Context, tire *domain.TireRecord) error {
	return r.db.WithContext(ctx).Save(tire).Error
}

func (r *TireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TireRecord{}, "id = ?", id).Error
}

// List returns every record, newest first. A non-blank search term narrows
// the result with a case-insensitive substring match across brand, model,
// size and sku; filtering never changes the ordering, so clearing the term
// restores the original listing.
func (r *TireRepository) List(ctx context.Context, search string) ([]domain.TireRecord, error) {
	var tires []domain.TireRecord

	query := r.db.WithContext(ctx).Model(&domain.TireRecord{})

	if term := strings.TrimSpace(search); term != "" {
		searchPattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(size) LIKE ? OR LOWER(sku) LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	err := query.Order("created_at DESC").Find(&tires).Error
	return tires, err
}

// Count returns the number of records (the SKU count shown above the
// listing), independent of any search filter.
func (r *TireRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TireRecord{}).Count(&count).Error
	return count, err
}

// TotalQuantity sums the quantity column over all records.
func (r *TireRepository) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.TireRecord{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
