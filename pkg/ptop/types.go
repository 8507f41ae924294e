package ptop

import (
	"github.com/shopspring/decimal"
)

// Default stock length for pipe materials when the catalog row does not
// carry one. Pipes are purchased in whole stock-length units.
var DefaultPipeLengthM = decimal.NewFromFloat(6.0)

// DefaultSpanWidthM is used when no width can be parsed out of a model's
// standard string.
const DefaultSpanWidthM = 2.0

// VATRate is the value-added tax rate applied on top of the supply price.
var VATRate = decimal.NewFromFloat(0.1)

// Model identifies a sellable product design.
type Model struct {
	ID         string
	Name       string
	Category   string
	Standard   string // free-text dimension string, e.g. "W2000×H1200"
	ExternalNo string
}

// BOMLine is one bill-of-materials row: the quantity of one material
// consumed per span (repeating unit) of the parent model.
type BOMLine struct {
	ModelName    string
	MaterialName string
	Standard     string
	Unit         string
	Category     string // selects pipe conversion and catalog lookup scope
	Quantity     decimal.Decimal
	UnitPrice    *decimal.Decimal // manual override for uncataloged materials
	Notes        string
}

// CatalogEntry is one priced row of a material catalog.
type CatalogEntry struct {
	ProductName string
	Standard    string
	Unit        string
	UnitPrice   decimal.Decimal
	PipeLengthM decimal.Decimal // primary catalog only; zero means DefaultPipeLengthM
}

// LineItem is one row of an expanded quotation. Quantities for pipe rows
// stay in linear meters; the piece-count conversion happens only when a
// purchase order is generated (see AggregatePurchase).
type LineItem struct {
	ModelName    string
	MaterialName string
	Standard     string // resolved full spec
	Unit         string
	Category     string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	StockLengthM decimal.Decimal // zero for non-pipe rows
	Notes        string
	IsHeader     bool // model section header for document layout
}

// SpanPlan is the per-model request inside one quotation: either an
// explicit span count or a total length the span count is derived from.
type SpanPlan struct {
	ModelName    string
	TotalLengthM float64
	SpanCount    int // 0 means derive from TotalLengthM
}

// Summary totals an expanded quotation.
type Summary struct {
	SupplyPrice decimal.Decimal
	VAT         decimal.Decimal
	Total       decimal.Decimal
	ItemCount   int
}

// BOMProvider fetches the per-span BOM of a model. An unknown model id
// yields an empty slice, not an error.
type BOMProvider interface {
	GetBOM(modelID string) ([]BOMLine, error)
}

// CatalogProvider searches the two material catalogs. Implementations must
// return rows in a stable order; the resolver takes the first match.
type CatalogProvider interface {
	SearchPrimary(productName string) ([]CatalogEntry, error)
	SearchSecondary(query string) ([]CatalogEntry, error)
}

// ModelRegistry looks up models by name.
type ModelRegistry interface {
	GetModelByName(name string) (*Model, error)
}
