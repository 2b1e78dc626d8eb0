package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses. Timestamps are formatted as ISO 8601 strings by
// the mapper package.

type TireDTO struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Size      string    `json:"size"`
	Ply       string    `json:"ply"`
	Condition string    `json:"condition"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes,omitempty"`
	ImagePath *string   `json:"imagePath"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt string    `json:"createdAt"` // ISO 8601
	UpdatedAt string    `json:"updatedAt"` // ISO 8601
}

// TireListResponse wraps the full inventory listing. The list is never
// paginated: the contract is every record, newest first.
type TireListResponse struct {
	Data  []TireDTO `json:"data"`
	Total int64     `json:"total"`
}

// InventoryStatsDTO carries the aggregates shown above the listing.
type InventoryStatsDTO struct {
	TotalItems int64 `json:"totalItems"`
	SKUCount   int64 `json:"skuCount"`
}

// ImageUploadResponse returns the stored blob name and its public URL.
// Clients put Path into a subsequent create or update payload.
type ImageUploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// CreateTireRequest carries the intake form fields. Price and Quantity use
// flex decoding: numeric strings parse, blanks and junk coerce to 0. A nil
// Quantity means the field was omitted entirely and the default of 1
// applies; an omitted Condition defaults to "New".
type CreateTireRequest struct {
	SKU       string    `json:"sku" validate:"max=100"`
	Brand     string    `json:"brand" validate:"max=100"`
	Model     string    `json:"model" validate:"max=100"`
	Size      string    `json:"size" validate:"max=50"`
	Ply       string    `json:"ply" validate:"max=50"`
	Condition string    `json:"condition" validate:"max=50"`
	Price     FlexFloat `json:"price" validate:"gte=0"`
	Quantity  *FlexInt  `json:"quantity" validate:"omitempty,gte=0"`
	Notes     string    `json:"notes"`
	ImagePath *string   `json:"imagePath" validate:"omitempty,max=500"`
}

// UpdateTireRequest is a full overwrite of the user-editable fields.
// Omitted numeric fields coerce to 0; the create-time defaults do not
// apply here.
type UpdateTireRequest struct {
	SKU       string    `json:"sku" validate:"max=100"`
	Brand     string    `json:"brand" validate:"max=100"`
	Model     string    `json:"model" validate:"max=100"`
	Size      string    `json:"size" validate:"max=50"`
	Ply       string    `json:"ply" validate:"max=50"`
	Condition string    `json:"condition" validate:"max=50"`
	Price     FlexFloat `json:"price" validate:"gte=0"`
	Quantity  FlexInt   `json:"quantity" validate:"gte=0"`
	Notes     string    `json:"notes"`
	ImagePath *string   `json:"imagePath" validate:"omitempty,max=500"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
