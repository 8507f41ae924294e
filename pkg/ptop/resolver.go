package ptop

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceResult is the outcome of a catalog lookup. A miss is not an error:
// Found is false, the price is zero and the spec empty, and the caller keeps
// going so one bad catalog entry never blocks a whole quotation.
type PriceResult struct {
	FullSpec     string
	UnitPrice    decimal.Decimal
	StockLengthM decimal.Decimal // nonzero only for pipe matches
	Found        bool
}

// Resolver resolves a BOM row's category/standard/material triple to a
// catalog price.
type Resolver interface {
	Resolve(category, standard, materialName string) PriceResult
}

// PriceResolver searches the primary catalog first (exact product-name
// match, spec-equal row) and falls back to the secondary catalog
// (substring match). Ties break on first row in catalog iteration order;
// providers return rows in a stable order so this is deterministic.
type PriceResolver struct {
	Catalogs CatalogProvider
	Log      *zap.Logger
}

func NewPriceResolver(catalogs CatalogProvider, log *zap.Logger) *PriceResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &PriceResolver{Catalogs: catalogs, Log: log}
}

// Resolve implements Resolver.
func (r *PriceResolver) Resolve(category, standard, materialName string) PriceResult {
	if res, ok := r.resolvePrimary(category, standard); ok {
		return res
	}
	if res, ok := r.resolveSecondary(standard, materialName); ok {
		return res
	}

	r.Log.Warn("material price not found in any catalog",
		zap.String("category", category),
		zap.String("standard", standard),
		zap.String("material_name", materialName))
	return PriceResult{}
}

func (r *PriceResolver) resolvePrimary(category, standard string) (PriceResult, bool) {
	rows, err := r.Catalogs.SearchPrimary(strings.TrimSpace(category))
	if err != nil {
		r.Log.Error("primary catalog search failed", zap.String("category", category), zap.Error(err))
		return PriceResult{}, false
	}

	for _, row := range rows {
		if !SpecsEqual(standard, row.Standard) {
			continue
		}
		spec := strings.TrimSpace(row.Standard)
		price := row.UnitPrice

		if IsPipeCategory(category) {
			length := row.PipeLengthM
			if length.Sign() <= 0 {
				length = DefaultPipeLengthM
			}
			// Catalog prices pipes per stock length; quotations need
			// a per-meter price.
			price = price.Div(length)
			return PriceResult{
				FullSpec:     fmt.Sprintf("%s×%sm", spec, length.String()),
				UnitPrice:    price,
				StockLengthM: length,
				Found:        true,
			}, true
		}

		return PriceResult{FullSpec: spec, UnitPrice: price, Found: true}, true
	}
	return PriceResult{}, false
}

func (r *PriceResolver) resolveSecondary(standard, materialName string) (PriceResult, bool) {
	if materialName != "" {
		rows, err := r.Catalogs.SearchSecondary(materialName)
		if err != nil {
			r.Log.Error("secondary catalog search failed", zap.String("query", materialName), zap.Error(err))
			return PriceResult{}, false
		}
		needle := strings.ToUpper(strings.TrimSpace(materialName))
		for _, row := range rows {
			if strings.Contains(strings.ToUpper(row.ProductName), needle) {
				return PriceResult{
					FullSpec:  strings.TrimSpace(row.Standard),
					UnitPrice: row.UnitPrice,
					Found:     true,
				}, true
			}
		}
	}

	needle := NormalizeSpec(strings.TrimSpace(standard))
	if needle == "" {
		return PriceResult{}, false
	}
	rows, err := r.Catalogs.SearchSecondary(standard)
	if err != nil {
		r.Log.Error("secondary catalog search failed", zap.String("query", standard), zap.Error(err))
		return PriceResult{}, false
	}
	for _, row := range rows {
		if strings.Contains(NormalizeSpec(row.Standard), needle) {
			return PriceResult{
				FullSpec:  strings.TrimSpace(row.Standard),
				UnitPrice: row.UnitPrice,
				Found:     true,
			}, true
		}
	}
	return PriceResult{}, false
}
