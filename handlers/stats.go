package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

type dashboardStats struct {
	ModelCount        int64            `json:"modelCount"`
	MainMaterialCount int64            `json:"mainMaterialCount"`
	SubMaterialCount  int64            `json:"subMaterialCount"`
	ProjectsInFlight  int64            `json:"projectsInFlight"`
	ProjectsDueSoon   int64            `json:"projectsDueSoon"` // due within 7 days
	OverdueOrders     int64            `json:"overdueOrders"`
	OpenOrderAmount   decimal.Decimal  `json:"openOrderAmount"`
	OrdersByStatus    map[string]int64 `json:"ordersByStatus"`
	OrdersByStage     map[string]int64 `json:"ordersByStage"`
}

// GetDashboardStats aggregates tenant-wide counts for the landing page.
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r)
	stats := dashboardStats{
		OrdersByStatus: map[string]int64{},
		OrdersByStage:  map[string]int64{},
	}

	config.DB.Model(&models.ProductModel{}).Where("tenant_id = ?", tenantID).Count(&stats.ModelCount)
	config.DB.Model(&models.MainMaterial{}).Where("tenant_id = ?", tenantID).Count(&stats.MainMaterialCount)
	config.DB.Model(&models.SubMaterial{}).Where("tenant_id = ?", tenantID).Count(&stats.SubMaterialCount)
	config.DB.Model(&models.Project{}).Where("tenant_id = ? AND status = ?", tenantID, "in_progress").
		Count(&stats.ProjectsInFlight)
	config.DB.Model(&models.Project{}).
		Where("tenant_id = ? AND status = ? AND final_due_date <= ?", tenantID, "in_progress", time.Now().AddDate(0, 0, 7)).
		Count(&stats.ProjectsDueSoon)
	config.DB.Model(&models.PurchaseOrder{}).
		Where("tenant_id = ? AND status = ? AND due_date < ?", tenantID, "in_progress", time.Now()).
		Count(&stats.OverdueOrders)

	var openAmount struct {
		Total decimal.Decimal
	}
	config.DB.Model(&models.PurchaseOrderItem{}).
		Select("COALESCE(SUM(purchase_order_items.amount), 0) AS total").
		Joins("JOIN purchase_orders ON purchase_orders.id = purchase_order_items.order_id").
		Where("purchase_orders.tenant_id = ? AND purchase_orders.status = ? AND purchase_orders.deleted_at IS NULL", tenantID, "in_progress").
		Scan(&openAmount)
	stats.OpenOrderAmount = openAmount.Total

	type bucket struct {
		Key   string
		Count int64
	}

	var byStatus []bucket
	config.DB.Model(&models.PurchaseOrder{}).
		Select("status AS key, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&byStatus)
	for _, b := range byStatus {
		stats.OrdersByStatus[b.Key] = b.Count
	}

	var byStage []bucket
	config.DB.Model(&models.PurchaseOrder{}).
		Select("current_stage AS key, COUNT(*) AS count").
		Where("tenant_id = ? AND status = ?", tenantID, "in_progress").
		Group("current_stage").
		Scan(&byStage)
	for _, b := range byStage {
		stats.OrdersByStage[b.Key] = b.Count
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
