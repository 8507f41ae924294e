package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a buyer the tenant delivers projects to.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Contact string `gorm:"size:100" json:"contact,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Project is one job for a customer: a contract with a final due date,
// whose fabrication is tracked through purchase orders and process events
// across external vendors.
type Project struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	Name           string    `gorm:"size:200;not null" json:"name"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customerId,omitempty"`
	Customer       *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	FinalDueDate   JSONTime   `gorm:"not null" json:"finalDueDate"`
	ContractType   string     `gorm:"size:30;default:public" json:"contractType"` // public, private
	ContractAmount int64      `gorm:"default:0" json:"contractAmount"`
	Status         string     `gorm:"size:30;default:in_progress;index" json:"status"` // in_progress, completed, on_hold

	InstallationCompletedDate *JSONTime `json:"installationCompletedDate,omitempty"`
	InstallationStaffCount    *int      `json:"installationStaffCount,omitempty"`
	InstallationDays          *int      `json:"installationDays,omitempty"`
	TaxInvoiceIssued          bool      `gorm:"default:false" json:"taxInvoiceIssued"`
	TradeStatementIssued      bool      `gorm:"default:false" json:"tradeStatementIssued"`
	Memo                      string    `gorm:"type:text" json:"memo,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Orders []PurchaseOrder `gorm:"foreignKey:ProjectID" json:"orders,omitempty"`
}
