package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProcessStages is the fixed fabrication sequence an order moves through.
var ProcessStages = []string{
	"cutting",
	"pipe_laser",
	"sheet_laser",
	"bending",
	"painting",
	"sticker",
	"inbound",
}

// Vendor is an external fabrication shop. ProcessTypes lists which stages
// it can perform.
type Vendor struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	VendorCode   string         `gorm:"size:50;not null;index" json:"vendorCode"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Contact      string         `gorm:"size:100" json:"contact,omitempty"`
	ProcessTypes pq.StringArray `gorm:"type:text[]" json:"processTypes"`
	Memo         string         `gorm:"type:text" json:"memo,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProcessEvent is one progress record of an order at a stage: planned and
// done dates, percent complete, which vendor performed it. Appending an
// event updates the parent order's current stage.
type ProcessEvent struct {
	ID      uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID uuid.UUID     `gorm:"type:uuid;index;not null" json:"orderId"`
	Order   PurchaseOrder `gorm:"foreignKey:OrderID" json:"-"`

	Stage       string     `gorm:"size:50;not null;index" json:"stage"`
	Progress    int        `gorm:"default:0" json:"progress"` // 0-100
	PlannedDate *JSONTime  `json:"plannedDate,omitempty"`
	DoneDate    *JSONTime  `json:"doneDate,omitempty"`
	VendorID    *uuid.UUID `gorm:"type:uuid;index" json:"vendorId,omitempty"`
	Vendor      *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Note        string     `gorm:"type:text" json:"note,omitempty"`
	CreatedBy   string     `gorm:"size:100;default:USER" json:"createdBy"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ProcessEvent) TableName() string {
	return "process_events"
}

// IsValidStage reports whether a stage name is one of the fixed sequence.
func IsValidStage(stage string) bool {
	for _, s := range ProcessStages {
		if s == stage {
			return true
		}
	}
	return false
}
