package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ModelPrice is the sell price of one product model per span.
type ModelPrice struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	ModelName string          `gorm:"size:100;not null;index" json:"modelName"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"unitPrice"`
	Unit      string          `gorm:"size:20;default:SPAN" json:"unit"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ModelPrice) TableName() string {
	return "model_prices"
}
