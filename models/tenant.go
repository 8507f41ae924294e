package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tenant is one fabrication company using the system. Every catalog and
// WIP row carries a tenant id; handlers always filter by it.
type Tenant struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code     string         `gorm:"size:20;uniqueIndex;not null" json:"code"` // e.g. "DOOHO", "KUKJE"
	IsActive bool           `gorm:"default:true" json:"isActive"`
	Settings datatypes.JSON `gorm:"type:jsonb" json:"settings,omitempty"` // per-company quotation defaults

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Users []User `gorm:"foreignKey:TenantID" json:"-"`
}
