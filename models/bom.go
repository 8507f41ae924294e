package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BOMItem is one bill-of-materials row: quantity of a material consumed
// per span of the parent model. Edits overwrite in place; there is no
// versioning, and concurrent edits are last-write-wins at the storage
// layer.
type BOMItem struct {
	ID             uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID       uuid.UUID    `gorm:"type:uuid;index;not null" json:"tenantId"`
	ProductModelID uuid.UUID    `gorm:"type:uuid;index;not null" json:"productModelId"`
	ProductModel   ProductModel `gorm:"foreignKey:ProductModelID" json:"-"`

	MaterialName string           `gorm:"size:100;not null" json:"materialName"`
	Standard     string           `gorm:"size:200" json:"standard"`
	Unit         string           `gorm:"size:20;default:EA" json:"unit"`
	Category     string           `gorm:"size:100;index" json:"category"` // "PIPE" categories get stock-length conversion
	Quantity     decimal.Decimal  `gorm:"type:numeric(14,4);not null" json:"quantity"`
	UnitPrice    *decimal.Decimal `gorm:"type:numeric(14,4)" json:"unitPrice,omitempty"` // manual override for uncataloged materials
	Notes        string           `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BOMItem) TableName() string {
	return "bom_items"
}
