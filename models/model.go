package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel identifies a sellable product design (a fence/structure
// model). The standard string is free text ("W2000×H1200") and is the
// source of the span width used during quotation.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_models_tenant_model" json:"tenantId"`
	ModelID    string    `gorm:"size:50;not null;uniqueIndex:idx_models_tenant_model" json:"modelId"` // e.g. "DH001"
	ModelName  string    `gorm:"size:100;not null;index" json:"modelName"`                            // e.g. "DAL01-2012"
	Category   string    `gorm:"size:100" json:"category"` // e.g. "design fence"
	Standard   string    `gorm:"size:200" json:"standard"` // free-text dimensions
	ExternalNo string    `gorm:"size:50" json:"externalNo,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BOMItems []BOMItem `gorm:"foreignKey:ProductModelID" json:"bomItems,omitempty"`
}

func (ProductModel) TableName() string {
	return "product_models"
}
