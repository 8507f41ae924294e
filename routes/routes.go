package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhun5568/Project-Aegis/handlers"
	"github.com/jhun5568/Project-Aegis/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/token", handlers.GetCurrentUser).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", handleHealth).Methods("GET")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)
	api.Use(middleware.MetricsMiddleware)

	api.HandleFunc("/profile", handleProfile).Methods("GET")

	registerCatalogRoutes(api)
	registerQuotationRoutes(api)
	registerOrderRoutes(api)
	registerWIPRoutes(api)

	api.HandleFunc("/stats/dashboard", handlers.GetDashboardStats).Methods("GET")

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleProfile returns user profile information
func handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	user := middleware.GetUser(r)

	response := map[string]interface{}{
		"userID":   claims.UserID,
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"tenantID": claims.TenantID,
	}
	json.NewEncoder(w).Encode(response)
}

// registerCatalogRoutes registers model, BOM and material catalog routes.
// Mutations are restricted to managers and admins; everyone can read.
func registerCatalogRoutes(api *mux.Router) {
	manage := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole([]string{"admin", "manager"}, h)
	}

	// Product models and their BOMs
	api.HandleFunc("/models", handlers.GetAllModels).Methods("GET")
	api.Handle("/models", manage(handlers.CreateModel)).Methods("POST")
	api.HandleFunc("/models/{id}", handlers.GetModel).Methods("GET")
	api.Handle("/models/{id}", manage(handlers.UpdateModel)).Methods("PUT")
	api.Handle("/models/{id}", manage(handlers.DeleteModel)).Methods("DELETE")
	api.HandleFunc("/models/{id}/bom", handlers.GetModelBOM).Methods("GET")
	api.Handle("/models/{id}/bom", manage(handlers.AddBOMItem)).Methods("POST")
	api.Handle("/models/{id}/bom", manage(handlers.ReplaceModelBOM)).Methods("PUT")
	api.Handle("/bom/{itemId}", manage(handlers.DeleteBOMItem)).Methods("DELETE")

	// Primary material catalog
	api.HandleFunc("/materials/main", handlers.GetAllMainMaterials).Methods("GET")
	api.Handle("/materials/main", manage(handlers.CreateMainMaterial)).Methods("POST")
	api.Handle("/materials/main/{id}", manage(handlers.UpdateMainMaterial)).Methods("PUT")
	api.Handle("/materials/main/{id}", manage(handlers.DeleteMainMaterial)).Methods("DELETE")

	// Secondary material catalog
	api.HandleFunc("/materials/sub", handlers.GetAllSubMaterials).Methods("GET")
	api.Handle("/materials/sub", manage(handlers.CreateSubMaterial)).Methods("POST")
	api.Handle("/materials/sub/{id}", manage(handlers.UpdateSubMaterial)).Methods("PUT")
	api.Handle("/materials/sub/{id}", manage(handlers.DeleteSubMaterial)).Methods("DELETE")

	// Sell prices per model
	api.HandleFunc("/model-prices", handlers.GetAllModelPrices).Methods("GET")
	api.Handle("/model-prices", manage(handlers.CreateModelPrice)).Methods("POST")
	api.Handle("/model-prices/{id}", manage(handlers.UpdateModelPrice)).Methods("PUT")
	api.Handle("/model-prices/{id}", manage(handlers.DeleteModelPrice)).Methods("DELETE")
}

// registerQuotationRoutes registers the expansion-engine endpoints.
func registerQuotationRoutes(api *mux.Router) {
	api.HandleFunc("/quotations/preview", handlers.PreviewQuotation).Methods("POST")
	api.HandleFunc("/quotations/export", handlers.ExportQuotation).Methods("POST")
	api.HandleFunc("/span-count", handlers.GetSpanCount).Methods("GET")
}

// registerOrderRoutes registers purchase order routes.
func registerOrderRoutes(api *mux.Router) {
	api.HandleFunc("/purchase-orders", handlers.GetAllOrders).Methods("GET")
	api.HandleFunc("/purchase-orders/generate", handlers.GeneratePurchaseOrder).Methods("POST")
	api.HandleFunc("/purchase-orders/{id}", handlers.GetOrder).Methods("GET")
	api.HandleFunc("/purchase-orders/{id}", handlers.UpdateOrder).Methods("PUT")
	api.Handle("/purchase-orders/{id}",
		middleware.RequireRole([]string{"admin", "manager"}, http.HandlerFunc(handlers.DeleteOrder))).Methods("DELETE")
	api.HandleFunc("/purchase-orders/{id}/export", handlers.ExportOrder).Methods("GET")
	api.HandleFunc("/purchase-orders/{id}/events", handlers.GetOrderEvents).Methods("GET")
	api.HandleFunc("/purchase-orders/{id}/events", handlers.AddProcessEvent).Methods("POST")
}

// registerWIPRoutes registers work-in-progress tracking routes.
func registerWIPRoutes(api *mux.Router) {
	manage := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole([]string{"admin", "manager"}, h)
	}

	api.HandleFunc("/customers", handlers.GetAllCustomers).Methods("GET")
	api.Handle("/customers", manage(handlers.CreateCustomer)).Methods("POST")
	api.Handle("/customers/{id}", manage(handlers.DeleteCustomer)).Methods("DELETE")

	api.HandleFunc("/vendors", handlers.GetAllVendors).Methods("GET")
	api.Handle("/vendors", manage(handlers.CreateVendor)).Methods("POST")
	api.Handle("/vendors/{id}", manage(handlers.UpdateVendor)).Methods("PUT")
	api.Handle("/vendors/{id}", manage(handlers.DeleteVendor)).Methods("DELETE")

	api.HandleFunc("/projects", handlers.GetAllProjects).Methods("GET")
	api.HandleFunc("/projects", handlers.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id}", handlers.GetProject).Methods("GET")
	api.HandleFunc("/projects/{id}", handlers.UpdateProject).Methods("PUT")
	api.Handle("/projects/{id}", manage(handlers.DeleteProject)).Methods("DELETE")

	api.HandleFunc("/board/stages", handlers.GetStageBoard).Methods("GET")
}
