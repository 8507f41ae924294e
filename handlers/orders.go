package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
	"github.com/jhun5568/Project-Aegis/pkg/ptop"
)

type generateOrderRequest struct {
	OrderNo    string            `json:"orderNo"`
	ProjectID  *uuid.UUID        `json:"projectId"`
	CustomerID *uuid.UUID        `json:"customerId"`
	VendorID   *uuid.UUID        `json:"vendorId"`
	OrderDate  *models.JSONTime  `json:"orderDate"`
	DueDate    *models.JSONTime  `json:"dueDate"`
	Memo       string            `json:"memo"`
	Plans      []spanPlanRequest `json:"plans"`
}

// GeneratePurchaseOrder expands the requested models, aggregates material
// demand across them (pipes converted to whole stock pieces), and persists
// the result as a purchase order with its line items.
func GeneratePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	var req generateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Plans) == 0 {
		http.Error(w, "at least one plan is required", http.StatusBadRequest)
		return
	}

	engine := engineForRequest(r)
	quotation, err := engine.BuildQuotation(toPlans(req.Plans))
	if err != nil {
		http.Error(w, err.Error(), quotationStatus(err))
		return
	}
	aggregated := ptop.AggregatePurchase(quotation.Items)

	orderNo := req.OrderNo
	if orderNo == "" {
		orderNo = nextOrderNo(tenantID)
	}

	order := models.PurchaseOrder{
		TenantID:   tenantID,
		OrderNo:    orderNo,
		ProjectID:  req.ProjectID,
		CustomerID: req.CustomerID,
		VendorID:   req.VendorID,
		OrderDate:  req.OrderDate,
		DueDate:    req.DueDate,
		Memo:       req.Memo,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range aggregated {
			item := models.PurchaseOrderItem{
				OrderID:      order.ID,
				MaterialName: line.MaterialName,
				Standard:     line.Standard,
				Unit:         line.Unit,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				Amount:       line.Amount,
				Notes:        line.Notes,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// nextOrderNo issues PO-YYYYMMDD-NNN, numbered per tenant per day. Collisions
// under concurrent generation are tolerable: order_no is a reference string,
// not a key.
func nextOrderNo(tenantID uuid.UUID) string {
	today := time.Now().Format("20060102")
	var count int64
	config.DB.Model(&models.PurchaseOrder{}).
		Where("tenant_id = ? AND order_no LIKE ?", tenantID, "PO-"+today+"-%").
		Count(&count)
	return fmt.Sprintf("PO-%s-%03d", today, count+1)
}

func GetAllOrders(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)

	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.PurchaseOrder{}).Where("tenant_id = ?", tenantID)
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if stage := r.URL.Query().Get("stage"); stage != "" {
		query = query.Where("current_stage = ?", stage)
	}
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if vendorID := r.URL.Query().Get("vendorId"); vendorID != "" {
		query = query.Where("vendor_id = ?", vendorID)
	}
	if params.Keyword != "" {
		query = query.Where("order_no ILIKE ?", "%"+params.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var orders []models.PurchaseOrder
	if err := query.Preload("Vendor").Preload("Project").
		Order("created_at DESC").Scopes(params.Paginate).
		Find(&orders).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ListResponse{Data: orders, Total: total, Page: params.Page, PageSize: params.PageSize})
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var order models.PurchaseOrder
	if err := config.DB.Preload("Items").Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Preload("Events.Vendor").Preload("Vendor").Preload("Project").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&order).Error; err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var order models.PurchaseOrder
	if err := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&order).Error; err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	var patch struct {
		Status    *string          `json:"status"`
		VendorID  *uuid.UUID       `json:"vendorId"`
		OrderDate *models.JSONTime `json:"orderDate"`
		DueDate   *models.JSONTime `json:"dueDate"`
		Memo      *string          `json:"memo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.VendorID != nil {
		order.VendorID = patch.VendorID
	}
	if patch.OrderDate != nil {
		order.OrderDate = patch.OrderDate
	}
	if patch.DueDate != nil {
		order.DueDate = patch.DueDate
	}
	if patch.Memo != nil {
		order.Memo = *patch.Memo
	}

	if err := config.DB.Save(&order).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	result := config.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.PurchaseOrder{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportOrder streams a purchase order's line items as an xlsx download.
func ExportOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenantID := middleware.GetTenantID(r)

	var order models.PurchaseOrder
	if err := config.DB.Preload("Items").Preload("Vendor").Preload("Project").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&order).Error; err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	excelFile, err := createOrderWorkbook(&order)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(order.OrderNo), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
