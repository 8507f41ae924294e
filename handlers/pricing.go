package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

func GetAllModelPrices(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.ModelPrice{}).Where("tenant_id = ?", tenantID)
	if params.Keyword != "" {
		query = query.Where("model_name ILIKE ?", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var items []models.ModelPrice
	if err := query.Order("model_name, id").Scopes(params.Paginate).Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: items, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func CreateModelPrice(w http.ResponseWriter, r *http.Request) {
	var item models.ModelPrice
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.ModelName == "" {
		http.Error(w, "modelName is required", http.StatusBadRequest)
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

func UpdateModelPrice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var item models.ModelPrice
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.ModelPrice
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ModelName = patch.ModelName
	item.UnitPrice = patch.UnitPrice
	item.Unit = patch.Unit
	item.Notes = patch.Notes

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteModelPrice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.ModelPrice{})
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
