package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MainMaterial is one row of the primary catalog: standard stock
// materials, priced per purchased unit. Pipe rows carry the stock length
// their price covers. Lookup from BOM rows is by (product name, spec)
// fuzzy matching, not a foreign key, so catalog entries can be added
// independently of BOM authoring.
type MainMaterial struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	ProductName string          `gorm:"size:100;not null;index" json:"productName"` // matches BOM category, e.g. "HGI PIPE"
	Standard    string          `gorm:"size:200;not null" json:"standard"`
	Unit        string          `gorm:"size:20;default:EA" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"unitPrice"`
	PipeLengthM decimal.Decimal `gorm:"type:numeric(8,3);default:0" json:"pipeLengthM"` // stock length in meters, pipes only
	Supplier    string          `gorm:"size:100" json:"supplier,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MainMaterial) TableName() string {
	return "main_materials"
}

// SubMaterial is one row of the secondary catalog: miscellaneous hardware
// matched by substring search. No stock-length concept.
type SubMaterial struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	ProductName string          `gorm:"size:100;not null;index" json:"productName"`
	Standard    string          `gorm:"size:200" json:"standard"`
	Unit        string          `gorm:"size:20;default:EA" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"unitPrice"`
	Supplier    string          `gorm:"size:100" json:"supplier,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubMaterial) TableName() string {
	return "sub_materials"
}
