package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrder is an order placed with an external vendor for one
// project. Its line items come from aggregating an expanded quotation
// across models; its fabrication progress is the trail of ProcessEvents.
type PurchaseOrder struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	OrderNo      string     `gorm:"size:50;not null;index" json:"orderNo"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index" json:"projectId,omitempty"`
	Project      *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customerId,omitempty"`
	VendorID     *uuid.UUID `gorm:"type:uuid;index" json:"vendorId,omitempty"`
	Vendor       *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	OrderDate    *JSONTime  `json:"orderDate,omitempty"`
	DueDate      *JSONTime  `json:"dueDate,omitempty"`
	Status       string     `gorm:"size:30;default:in_progress;index" json:"status"` // in_progress, completed, canceled
	CurrentStage string     `gorm:"size:50;default:not_started" json:"currentStage"`
	Memo         string     `gorm:"type:text" json:"memo,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items  []PurchaseOrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Events []ProcessEvent      `gorm:"foreignKey:OrderID" json:"events,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one aggregated material line on a purchase order.
// Pipe lines are stored post-conversion: whole stock pieces in EA.
type PurchaseOrderItem struct {
	ID      uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID uuid.UUID     `gorm:"type:uuid;index;not null" json:"orderId"`
	Order   PurchaseOrder `gorm:"foreignKey:OrderID" json:"-"`

	MaterialName string          `gorm:"size:100;not null" json:"materialName"`
	Standard     string          `gorm:"size:200" json:"standard"`
	Unit         string          `gorm:"size:20;default:EA" json:"unit"`
	Quantity     decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"unitPrice"`
	Amount       decimal.Decimal `gorm:"type:numeric(16,4);not null" json:"amount"`
	Notes        string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
