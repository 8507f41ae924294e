package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

// Customers

func GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.Customer{}).Where("tenant_id = ?", tenantID)
	if params.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var customers []models.Customer
	if err := query.Order("name, id").Scopes(params.Paginate).Find(&customers).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: customers, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if customer.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	customer.TenantID = middleware.GetTenantID(r)

	if err := config.DB.Create(&customer).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.Customer{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Vendors

func GetAllVendors(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	query := config.DB.Model(&models.Vendor{}).Where("tenant_id = ?", tenantID)
	if process := r.URL.Query().Get("process"); process != "" {
		if !models.IsValidStage(process) {
			http.Error(w, fmt.Sprintf("unknown process stage %q", process), http.StatusBadRequest)
			return
		}
		query = query.Where("? = ANY(process_types)", process)
	}

	var vendors []models.Vendor
	if err := query.Order("vendor_code, id").Find(&vendors).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendors)
}

func CreateVendor(w http.ResponseWriter, r *http.Request) {
	var vendor models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if vendor.VendorCode == "" || vendor.Name == "" {
		http.Error(w, "vendorCode and name are required", http.StatusBadRequest)
		return
	}
	for _, p := range vendor.ProcessTypes {
		if !models.IsValidStage(p) {
			http.Error(w, fmt.Sprintf("unknown process stage %q", p), http.StatusBadRequest)
			return
		}
	}
	vendor.TenantID = middleware.GetTenantID(r)

	if err := config.DB.Create(&vendor).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendor)
}

func UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var vendor models.Vendor
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&vendor).Error; err != nil {
		http.Error(w, "vendor not found", http.StatusNotFound)
		return
	}

	var patch models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	for _, p := range patch.ProcessTypes {
		if !models.IsValidStage(p) {
			http.Error(w, fmt.Sprintf("unknown process stage %q", p), http.StatusBadRequest)
			return
		}
	}
	vendor.VendorCode = patch.VendorCode
	vendor.Name = patch.Name
	vendor.Contact = patch.Contact
	vendor.ProcessTypes = patch.ProcessTypes
	vendor.Memo = patch.Memo

	if err := config.DB.Save(&vendor).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendor)
}

func DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.Vendor{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "vendor not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Projects

func GetAllProjects(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.Project{}).Where("tenant_id = ?", tenantID)
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if params.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var projects []models.Project
	if err := query.Preload("Customer").
		Order("final_due_date, id").Scopes(params.Paginate).
		Find(&projects).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: projects, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if project.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	project.TenantID = middleware.GetTenantID(r)

	if err := config.DB.Create(&project).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var project models.Project
	if err := config.DB.Preload("Customer").Preload("Orders").Preload("Orders.Vendor").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&project).Error; err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var project models.Project
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&project).Error; err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}

	var patch struct {
		Name                      *string          `json:"name"`
		CustomerID                *uuid.UUID       `json:"customerId"`
		FinalDueDate              *models.JSONTime `json:"finalDueDate"`
		ContractType              *string          `json:"contractType"`
		ContractAmount            *int64           `json:"contractAmount"`
		Status                    *string          `json:"status"`
		InstallationCompletedDate *models.JSONTime `json:"installationCompletedDate"`
		InstallationStaffCount    *int             `json:"installationStaffCount"`
		InstallationDays          *int             `json:"installationDays"`
		TaxInvoiceIssued          *bool            `json:"taxInvoiceIssued"`
		TradeStatementIssued      *bool            `json:"tradeStatementIssued"`
		Memo                      *string          `json:"memo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.CustomerID != nil {
		project.CustomerID = patch.CustomerID
	}
	if patch.FinalDueDate != nil {
		project.FinalDueDate = *patch.FinalDueDate
	}
	if patch.ContractType != nil {
		project.ContractType = *patch.ContractType
	}
	if patch.ContractAmount != nil {
		project.ContractAmount = *patch.ContractAmount
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.InstallationCompletedDate != nil {
		project.InstallationCompletedDate = patch.InstallationCompletedDate
	}
	if patch.InstallationStaffCount != nil {
		project.InstallationStaffCount = patch.InstallationStaffCount
	}
	if patch.InstallationDays != nil {
		project.InstallationDays = patch.InstallationDays
	}
	if patch.TaxInvoiceIssued != nil {
		project.TaxInvoiceIssued = *patch.TaxInvoiceIssued
	}
	if patch.TradeStatementIssued != nil {
		project.TradeStatementIssued = *patch.TradeStatementIssued
	}
	if patch.Memo != nil {
		project.Memo = *patch.Memo
	}

	if err := config.DB.Save(&project).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.Project{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Process events

// AddProcessEvent appends a progress record to an order and, in the same
// transaction, moves the order's current stage forward. 100% progress on the
// final stage completes the order.
func AddProcessEvent(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var order models.PurchaseOrder
	if err := config.DB.Where("id = ? AND tenant_id = ?", orderID, tenantID).First(&order).Error; err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	var event models.ProcessEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidStage(event.Stage) {
		http.Error(w, fmt.Sprintf("unknown process stage %q", event.Stage), http.StatusBadRequest)
		return
	}
	if event.Progress < 0 || event.Progress > 100 {
		http.Error(w, "progress must be between 0 and 100", http.StatusBadRequest)
		return
	}
	event.ID = uuid.Nil
	event.OrderID = order.ID
	if claims := middleware.GetClaims(r); claims != nil {
		event.CreatedBy = claims.Name
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		order.CurrentStage = event.Stage
		if event.Stage == models.ProcessStages[len(models.ProcessStages)-1] && event.Progress == 100 {
			order.Status = "completed"
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func GetOrderEvents(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var order models.PurchaseOrder
	if err := config.DB.Where("id = ? AND tenant_id = ?", orderID, tenantID).First(&order).Error; err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	var events []models.ProcessEvent
	if err := config.DB.Preload("Vendor").
		Where("order_id = ?", order.ID).
		Order("created_at").
		Find(&events).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

// GetStageBoard groups the tenant's in-progress orders by current stage, in
// fabrication-sequence order, for the shop-floor board view.
func GetStageBoard(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	var orders []models.PurchaseOrder
	if err := config.DB.Preload("Vendor").Preload("Project").
		Where("tenant_id = ? AND status = ?", tenantID, "in_progress").
		Order("created_at").
		Find(&orders).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	board := map[string][]models.PurchaseOrder{"not_started": {}}
	for _, stage := range models.ProcessStages {
		board[stage] = []models.PurchaseOrder{}
	}
	for _, order := range orders {
		board[order.CurrentStage] = append(board[order.CurrentStage], order)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"stages": append([]string{"not_started"}, models.ProcessStages...),
		"board":  board,
	})
}
