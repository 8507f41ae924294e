package config

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jhun5568/Project-Aegis/models"
)

// SeedTenants creates the default tenants if none exist.
func SeedTenants() {
	var count int64
	DB.Model(&models.Tenant{}).Count(&count)
	if count > 0 {
		return
	}

	tenants := []models.Tenant{
		{ID: uuid.New(), Name: "Dooho Metal", Code: "DOOHO", IsActive: true},
		{ID: uuid.New(), Name: "Kukje Fence", Code: "KUKJE", IsActive: true},
		{ID: uuid.New(), Name: "Demo", Code: "DEMO", IsActive: true},
	}
	for _, t := range tenants {
		if err := DB.Create(&t).Error; err != nil {
			log.Printf("Warning: seeding tenant %s failed: %v", t.Code, err)
		}
	}
	log.Println("Seeded default tenants")
}

// SeedVendors registers the default vendor list for every tenant that has
// none yet, one vendor per fabrication stage.
func SeedVendors() {
	defaults := []models.Vendor{
		{VendorCode: "NOWORK01", Name: "No Work", ProcessTypes: pq.StringArray(models.ProcessStages), Memo: "stage skipped"},
		{VendorCode: "BEND01", Name: "Oseong Bending", Contact: "010-0000-0001", ProcessTypes: pq.StringArray{"bending"}},
		{VendorCode: "PLASER01", Name: "Hwaseong Works", ProcessTypes: pq.StringArray{"pipe_laser"}},
		{VendorCode: "PAINT01", Name: "Hyundai Coating", Contact: "010-0000-0002", ProcessTypes: pq.StringArray{"painting"}},
		{VendorCode: "SLASER01", Name: "Dusohn Laser", Contact: "010-0000-0003", ProcessTypes: pq.StringArray{"sheet_laser"}},
		{VendorCode: "CUT01", Name: "Hyosung Cutting", Contact: "010-0000-0004", ProcessTypes: pq.StringArray{"cutting"}},
		{VendorCode: "STICK01", Name: "Innotech Sticker", Contact: "010-0000-0005", ProcessTypes: pq.StringArray{"sticker"}},
		{VendorCode: "RECV01", Name: "Ready For Pickup", ProcessTypes: pq.StringArray{"inbound"}, Memo: "product ready"},
	}

	var tenants []models.Tenant
	if err := DB.Find(&tenants).Error; err != nil {
		log.Printf("Warning: vendor seeding skipped: %v", err)
		return
	}

	for _, t := range tenants {
		var count int64
		DB.Model(&models.Vendor{}).Where("tenant_id = ?", t.ID).Count(&count)
		if count > 0 {
			continue
		}
		for _, v := range defaults {
			v.ID = uuid.New()
			v.TenantID = t.ID
			if err := DB.Create(&v).Error; err != nil {
				log.Printf("Warning: seeding vendor %s for tenant %s failed: %v", v.VendorCode, t.Code, err)
			}
		}
	}
}
