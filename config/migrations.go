package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/jhun5568/Project-Aegis/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Tenant{}, &models.User{},
					&models.ProductModel{}, &models.BOMItem{},
					&models.MainMaterial{}, &models.SubMaterial{}, &models.ModelPrice{})
			},
		},
		{
			ID: "20250812_create_wip_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Customer{}, &models.Project{},
					&models.Vendor{}, &models.PurchaseOrder{},
					&models.PurchaseOrderItem{}, &models.ProcessEvent{})
			},
		},
		{
			ID: "20250819_add_catalog_lookup_indexes",
			Migrate: func(tx *gorm.DB) error {
				// Catalog iteration order must be stable: the price
				// resolver takes the first spec-equal row.
				if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_main_materials_lookup ON main_materials (tenant_id, product_name, id)").Error; err != nil {
					return err
				}
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_sub_materials_lookup ON sub_materials (tenant_id, product_name, id)").Error
			},
		},
	})

	return m.Migrate()
}
