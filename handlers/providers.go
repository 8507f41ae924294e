package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
	"github.com/jhun5568/Project-Aegis/pkg/ptop"
)

// The expansion engine is pure; these providers are its tenant-scoped
// window onto the database. Each quotation run reads a snapshot and
// computes in memory, so every provider call is an ordinary fallible
// synchronous query.

type dbModelRegistry struct {
	db       *gorm.DB
	tenantID uuid.UUID
}

func (p dbModelRegistry) GetModelByName(name string) (*ptop.Model, error) {
	var m models.ProductModel
	err := p.db.Where("tenant_id = ? AND model_name = ?", p.tenantID, name).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ptop.Model{
		ID:         m.ID.String(),
		Name:       m.ModelName,
		Category:   m.Category,
		Standard:   m.Standard,
		ExternalNo: m.ExternalNo,
	}, nil
}

type dbBOMProvider struct {
	db       *gorm.DB
	tenantID uuid.UUID
}

func (p dbBOMProvider) GetBOM(modelID string) ([]ptop.BOMLine, error) {
	id, err := uuid.Parse(modelID)
	if err != nil {
		return nil, err
	}

	var rows []models.BOMItem
	if err := p.db.Preload("ProductModel").
		Where("tenant_id = ? AND product_model_id = ?", p.tenantID, id).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]ptop.BOMLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, ptop.BOMLine{
			ModelName:    row.ProductModel.ModelName,
			MaterialName: row.MaterialName,
			Standard:     row.Standard,
			Unit:         row.Unit,
			Category:     row.Category,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			Notes:        row.Notes,
		})
	}
	return lines, nil
}

type dbCatalogProvider struct {
	db       *gorm.DB
	tenantID uuid.UUID
}

func (p dbCatalogProvider) SearchPrimary(productName string) ([]ptop.CatalogEntry, error) {
	var rows []models.MainMaterial
	// Ordered so the resolver's first-match tie-break is deterministic.
	if err := p.db.Where("tenant_id = ? AND product_name = ?", p.tenantID, strings.TrimSpace(productName)).
		Order("product_name, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ptop.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ptop.CatalogEntry{
			ProductName: row.ProductName,
			Standard:    row.Standard,
			Unit:        row.Unit,
			UnitPrice:   row.UnitPrice,
			PipeLengthM: row.PipeLengthM,
		})
	}
	return out, nil
}

func (p dbCatalogProvider) SearchSecondary(query string) ([]ptop.CatalogEntry, error) {
	// The resolver matches by normalized substring containment, which SQL
	// ILIKE cannot reproduce ("M12x100" must hit "M12*100"), so the whole
	// tenant catalog is returned and matched in memory. Secondary catalogs
	// are small hardware lists.
	var rows []models.SubMaterial
	if err := p.db.Where("tenant_id = ?", p.tenantID).
		Order("product_name, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ptop.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ptop.CatalogEntry{
			ProductName: row.ProductName,
			Standard:    row.Standard,
			Unit:        row.Unit,
			UnitPrice:   row.UnitPrice,
		})
	}
	return out, nil
}

// engineForRequest builds a tenant-scoped expansion engine for one request.
func engineForRequest(r *http.Request) *ptop.Engine {
	tenantID := middleware.GetTenantID(r)
	return ptop.NewEngine(
		dbBOMProvider{db: config.DB, tenantID: tenantID},
		dbCatalogProvider{db: config.DB, tenantID: tenantID},
		dbModelRegistry{db: config.DB, tenantID: tenantID},
		config.Logger,
	)
}

func registryForRequest(r *http.Request) ptop.ModelRegistry {
	return dbModelRegistry{db: config.DB, tenantID: middleware.GetTenantID(r)}
}
