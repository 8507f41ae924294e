package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

// Primary catalog: standard stock materials.

func GetAllMainMaterials(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.MainMaterial{}).Where("tenant_id = ?", tenantID)
	if params.Keyword != "" {
		query = query.Where("product_name ILIKE ? OR standard ILIKE ?", "%"+params.Keyword+"%", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var items []models.MainMaterial
	if err := query.Order("product_name, id").Scopes(params.Paginate).Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: items, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func CreateMainMaterial(w http.ResponseWriter, r *http.Request) {
	var item models.MainMaterial
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.ProductName == "" || item.Standard == "" {
		http.Error(w, "productName and standard are required", http.StatusBadRequest)
		return
	}
	item.TenantID = middleware.GetTenantID(r)

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateMainMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var item models.MainMaterial
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.MainMaterial
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ProductName = patch.ProductName
	item.Standard = patch.Standard
	item.Unit = patch.Unit
	item.UnitPrice = patch.UnitPrice
	item.PipeLengthM = patch.PipeLengthM
	item.Supplier = patch.Supplier
	item.Notes = patch.Notes

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteMainMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.MainMaterial{})
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

// Secondary catalog: miscellaneous hardware.

func GetAllSubMaterials(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.SubMaterial{}).Where("tenant_id = ?", tenantID)
	if params.Keyword != "" {
		query = query.Where("product_name ILIKE ? OR standard ILIKE ?", "%"+params.Keyword+"%", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var items []models.SubMaterial
	if err := query.Order("product_name, id").Scopes(params.Paginate).Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: items, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func CreateSubMaterial(w http.ResponseWriter, r *http.Request) {
	var item models.SubMaterial
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.ProductName == "" {
		http.Error(w, "productName is required", http.StatusBadRequest)
		return
	}
	item.TenantID = middleware.GetTenantID(r)

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateSubMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var item models.SubMaterial
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.SubMaterial
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ProductName = patch.ProductName
	item.Standard = patch.Standard
	item.Unit = patch.Unit
	item.UnitPrice = patch.UnitPrice
	item.Supplier = patch.Supplier
	item.Notes = patch.Notes

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteSubMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.SubMaterial{})
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
