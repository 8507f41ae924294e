package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

// GetModelBOM lists a model's BOM rows. An unknown model id yields an
// empty list, not an error; only quotation generation treats an empty BOM
// as fatal.
func GetModelBOM(w http.ResponseWriter, r *http.Request) {
	modelID := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var items []models.BOMItem
	if err := config.DB.Where("tenant_id = ? AND product_model_id = ?", tenantID, modelID).
		Order("created_at, id").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func AddBOMItem(w http.ResponseWriter, r *http.Request) {
	modelID := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var model models.ProductModel
	if err := config.DB.Where("id = ? AND tenant_id = ?", modelID, tenantID).First(&model).Error; err != nil {
		http.Error(w, "model not found", http.StatusNotFound)
		return
	}

	var item models.BOMItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.MaterialName == "" {
		http.Error(w, "materialName is required", http.StatusBadRequest)
		return
	}
	item.TenantID = tenantID
	item.ProductModelID = model.ID

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// ReplaceModelBOM overwrites a model's whole BOM in one transaction, the
// bulk-edit path. No versioning: edits overwrite in place.
func ReplaceModelBOM(w http.ResponseWriter, r *http.Request) {
	modelID := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var model models.ProductModel
	if err := config.DB.Where("id = ? AND tenant_id = ?", modelID, tenantID).First(&model).Error; err != nil {
		http.Error(w, "model not found", http.StatusNotFound)
		return
	}

	var items []models.BOMItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("tenant_id = ? AND product_model_id = ?", tenantID, model.ID).
		Delete(&models.BOMItem{}).Error; err != nil {
		tx.Rollback()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for i := range items {
		items[i].ID = uuid.Nil
		items[i].TenantID = tenantID
		items[i].ProductModelID = model.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func DeleteBOMItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", itemID, tenantID).Delete(&models.BOMItem{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
