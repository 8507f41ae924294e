package ptop

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrModelNotFound is returned for a model name the registry cannot
	// resolve: a catalog-configuration problem the caller must see.
	ErrModelNotFound = errors.New("model not found")
	// ErrEmptyBOM is returned for a model with no BOM rows; expanding it
	// would produce systematically wrong purchase quantities.
	ErrEmptyBOM = errors.New("model has no bill of materials")
)

// Engine binds the catalog providers to the expansion algorithm. It is
// request-scoped and stateless between calls: every quotation reads a fresh
// snapshot of BOM and catalog data and computes entirely in memory.
type Engine struct {
	bom      BOMProvider
	catalogs CatalogProvider
	models   ModelRegistry
	log      *zap.Logger
}

func NewEngine(bom BOMProvider, catalogs CatalogProvider, models ModelRegistry, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{bom: bom, catalogs: catalogs, models: models, log: log}
}

// SpanCount resolves the plan's multiplier: an explicit span count wins,
// otherwise it is derived from the requested total length and the model's
// width. Always at least 1.
func (e *Engine) SpanCount(plan SpanPlan, model *Model) int {
	if plan.SpanCount > 0 {
		return plan.SpanCount
	}
	n := DeriveSpanCount(plan.TotalLengthM, model.Standard, DefaultSpanWidthM)
	if ParseWidthMeters(model.Standard, -1) <= 0 {
		e.log.Warn("could not parse width from model standard, using fallback",
			zap.String("model", model.Name),
			zap.String("standard", model.Standard),
			zap.Float64("fallback_width_m", DefaultSpanWidthM))
	}
	return n
}

// QuoteModel expands one model's BOM for the given plan. A missing model or
// an empty BOM is a surfaced error, unlike price-resolution misses which
// degrade to zero-priced rows.
func (e *Engine) QuoteModel(plan SpanPlan) ([]LineItem, error) {
	model, err := e.models.GetModelByName(plan.ModelName)
	if err != nil {
		return nil, fmt.Errorf("look up model %q: %w", plan.ModelName, err)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, plan.ModelName)
	}

	bom, err := e.bom.GetBOM(model.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch BOM for model %q: %w", model.Name, err)
	}
	if len(bom) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyBOM, model.Name)
	}

	resolver := NewPriceResolver(e.catalogs, e.log)
	return Expand(bom, e.SpanCount(plan, model), resolver), nil
}

// Quotation is the engine's document-facing output: an ordered item list
// with one section header per model, plus totals. The document collaborator
// maps Items into spreadsheet cells; the engine knows nothing about cell
// coordinates or file formats.
type Quotation struct {
	Items   []LineItem
	Spans   map[string]int // span count per model name
	Summary Summary
}

// BuildQuotation expands every plan in order, prefixing each model's items
// with a section-header row. Any fatal per-model error aborts the whole
// build.
func (e *Engine) BuildQuotation(plans []SpanPlan) (*Quotation, error) {
	q := &Quotation{Items: []LineItem{}, Spans: map[string]int{}}

	for _, plan := range plans {
		model, err := e.models.GetModelByName(plan.ModelName)
		if err != nil {
			return nil, fmt.Errorf("look up model %q: %w", plan.ModelName, err)
		}
		if model == nil {
			return nil, fmt.Errorf("%w: %q", ErrModelNotFound, plan.ModelName)
		}

		spans := e.SpanCount(plan, model)
		q.Spans[model.Name] = spans

		bom, err := e.bom.GetBOM(model.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch BOM for model %q: %w", model.Name, err)
		}
		if len(bom) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyBOM, model.Name)
		}

		q.Items = append(q.Items, LineItem{
			ModelName:    model.Name,
			MaterialName: fmt.Sprintf("[%s] %s", model.Name, model.Standard),
			IsHeader:     true,
		})
		resolver := NewPriceResolver(e.catalogs, e.log)
		q.Items = append(q.Items, Expand(bom, spans, resolver)...)
	}

	q.Summary = Summarize(q.Items)
	return q, nil
}

// Summarize totals non-header items: supply price, VAT on top, grand total.
// Amounts round to 2 decimals the way the quotation document shows them.
func Summarize(items []LineItem) Summary {
	supply := decimal.Zero
	count := 0
	for _, it := range items {
		if it.IsHeader {
			continue
		}
		supply = supply.Add(it.Amount)
		count++
	}
	vat := supply.Mul(VATRate).Round(2)
	supply = supply.Round(2)
	return Summary{
		SupplyPrice: supply,
		VAT:         vat,
		Total:       supply.Add(vat),
		ItemCount:   count,
	}
}
