package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate fills the ID client-side so inserts also work on databases
// without a uuid default (sqlite in tests).
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Common condition labels. The column stays free text; these are the values
// the shop uses day to day and the default applied at create.
const (
	ConditionNew         = "New"
	ConditionUsed        = "Used"
	ConditionRefurbished = "Refurbished"
)

// DefaultQuantity applies when a create request omits the quantity field
// entirely. A submitted blank still coerces to 0.
const DefaultQuantity = 1

// TireRecord is a single inventory line: one tire product the shop has in
// stock, with an optional image stored in blob storage. ImagePath stays nil
// until an image is attached.
type TireRecord struct {
	BaseModel
	SKU       string  `gorm:"type:varchar(100);not null;default:'';index"`
	Brand     string  `gorm:"type:varchar(100);not null;default:'';index"`
	Model     string  `gorm:"type:varchar(100);not null;default:''"`
	Size      string  `gorm:"type:varchar(50);not null;default:''"`
	Ply       string  `gorm:"type:varchar(50);not null;default:''"`
	Condition string  `gorm:"type:varchar(50);not null;default:'New'"`
	Price     float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Quantity  int     `gorm:"not null;default:1"`
	Notes     string  `gorm:"type:text"`
	ImagePath *string `gorm:"type:varchar(500)"`
}

// TableName overrides the default table name to match the migration
func (TireRecord) TableName() string {
	return "tires"
}

// InventoryStats aggregates over the full record set, independent of any
// active search filter.
type InventoryStats struct {
	TotalItems int64
	SKUCount   int64
}
