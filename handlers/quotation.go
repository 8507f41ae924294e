package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhun5568/Project-Aegis/pkg/ptop"
)

// spanPlanRequest is one model line of a quotation request. SpanCount wins
// when both are given.
type spanPlanRequest struct {
	ModelName    string  `json:"modelName"`
	TotalLengthM float64 `json:"totalLengthM"`
	SpanCount    int     `json:"spanCount"`
}

type quotationRequest struct {
	Title        string            `json:"title"`
	CustomerName string            `json:"customerName"`
	ProjectName  string            `json:"projectName"`
	Plans        []spanPlanRequest `json:"plans"`
}

type lineItemPayload struct {
	ModelName    string          `json:"modelName"`
	MaterialName string          `json:"materialName"`
	Standard     string          `json:"standard"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Amount       decimal.Decimal `json:"amount"`
	StockLengthM decimal.Decimal `json:"stockLengthM,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	IsHeader     bool            `json:"isHeader,omitempty"`
}

type quotationResponse struct {
	Title       string            `json:"title,omitempty"`
	GeneratedAt string            `json:"generatedAt"`
	Items       []lineItemPayload `json:"items"`
	Spans       map[string]int    `json:"spans"`
	SupplyPrice decimal.Decimal   `json:"supplyPrice"`
	VAT         decimal.Decimal   `json:"vat"`
	Total       decimal.Decimal   `json:"total"`
	ItemCount   int               `json:"itemCount"`
}

func toPlans(reqs []spanPlanRequest) []ptop.SpanPlan {
	plans := make([]ptop.SpanPlan, 0, len(reqs))
	for _, p := range reqs {
		plans = append(plans, ptop.SpanPlan{
			ModelName:    p.ModelName,
			TotalLengthM: p.TotalLengthM,
			SpanCount:    p.SpanCount,
		})
	}
	return plans
}

func toPayload(items []ptop.LineItem) []lineItemPayload {
	out := make([]lineItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemPayload{
			ModelName:    it.ModelName,
			MaterialName: it.MaterialName,
			Standard:     it.Standard,
			Unit:         it.Unit,
			Category:     it.Category,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Amount:       it.Amount,
			StockLengthM: it.StockLengthM,
			Notes:        it.Notes,
			IsHeader:     it.IsHeader,
		})
	}
	return out
}

func quotationStatus(err error) int {
	if errors.Is(err, ptop.ErrModelNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ptop.ErrEmptyBOM) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// PreviewQuotation expands the requested models into a full line-item list
// with totals, without persisting anything. The frontend renders this
// directly and the export endpoint turns the same payload into a workbook.
func PreviewQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
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

	resp := quotationResponse{
		Title:       req.Title,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Items:       toPayload(quotation.Items),
		Spans:       quotation.Spans,
		SupplyPrice: quotation.Summary.SupplyPrice,
		VAT:         quotation.Summary.VAT,
		Total:       quotation.Summary.Total,
		ItemCount:   quotation.Summary.ItemCount,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ExportQuotation builds the same quotation as PreviewQuotation and streams
// it as an xlsx download.
func ExportQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
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

	title := req.Title
	if title == "" {
		title = "Quotation"
	}
	excelFile, err := createQuotationWorkbook(title, req.CustomerName, req.ProjectName, quotation)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(title), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// GetSpanCount answers "how many spans fit this site length" for one model
// without expanding its BOM. ?model=NAME&length=METERS
func GetSpanCount(w http.ResponseWriter, r *http.Request) {
	modelName := r.URL.Query().Get("model")
	if modelName == "" {
		http.Error(w, "model query parameter is required", http.StatusBadRequest)
		return
	}
	length, err := strconv.ParseFloat(r.URL.Query().Get("length"), 64)
	if err != nil || length <= 0 {
		http.Error(w, "length must be a positive number", http.StatusBadRequest)
		return
	}

	registry := registryForRequest(r)
	model, err := registry.GetModelByName(modelName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if model == nil {
		http.Error(w, "model not found", http.StatusNotFound)
		return
	}

	widthM := ptop.ParseWidthMeters(model.Standard, ptop.DefaultSpanWidthM)
	spans := ptop.DeriveSpanCount(length, model.Standard, ptop.DefaultSpanWidthM)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"modelName":    model.Name,
		"standard":     model.Standard,
		"widthM":       widthM,
		"totalLengthM": length,
		"spanCount":    spans,
	})
}
