package ptop

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Expand turns a per-span BOM and a span multiplier into quotation line
// items. Quantities stay in linear meters for pipe rows, annotated with the
// stock-length piece count; prices come from the resolver, with inline BOM
// overrides winning. Rows that resolve to the same (material, spec) within
// one model merge into a single line. A multiplier of zero or an empty BOM
// yields an empty slice.
func Expand(bom []BOMLine, multiplier int, resolver Resolver) []LineItem {
	items := []LineItem{}
	if multiplier <= 0 || len(bom) == 0 {
		return items
	}

	mult := decimal.NewFromInt(int64(multiplier))
	index := map[string]int{}

	for _, row := range bom {
		raw := row.Quantity.Mul(mult)

		res := resolver.Resolve(row.Category, row.Standard, row.MaterialName)
		price := res.UnitPrice
		if row.UnitPrice != nil {
			price = *row.UnitPrice
		}
		spec := strings.TrimSpace(row.Standard)
		if res.Found && res.FullSpec != "" {
			spec = res.FullSpec
		}

		key := row.ModelName + "\x00" + row.MaterialName + "\x00" + spec
		if i, ok := index[key]; ok {
			items[i].Quantity = items[i].Quantity.Add(raw)
			continue
		}

		item := LineItem{
			ModelName:    row.ModelName,
			MaterialName: row.MaterialName,
			Standard:     spec,
			Unit:         row.Unit,
			Category:     row.Category,
			Quantity:     raw,
			UnitPrice:    price,
			Notes:        row.Notes,
		}
		if IsPipeCategory(row.Category) {
			item.StockLengthM = res.StockLengthM
			if item.StockLengthM.Sign() <= 0 {
				item.StockLengthM = DefaultPipeLengthM
			}
		}
		index[key] = len(items)
		items = append(items, item)
	}

	for i := range items {
		finalizeItem(&items[i])
	}
	return items
}

// finalizeItem computes the amount and the pipe consumption note once all
// merging is done, so merged rows are annotated with their summed quantity.
func finalizeItem(it *LineItem) {
	it.Amount = it.Quantity.Mul(it.UnitPrice)
	if it.StockLengthM.Sign() <= 0 {
		return
	}
	pieces := PipePieces(it.Quantity, it.StockLengthM)
	note := fmt.Sprintf("stock length %sm × %d pcs", it.StockLengthM.String(), pieces)
	if it.Notes != "" {
		it.Notes = it.Notes + " | " + note
	} else {
		it.Notes = note
	}
}

// PipePieces converts a linear-meter requirement into whole stock-length
// pieces, rounding up. Non-positive inputs yield zero.
func PipePieces(totalM, stockLengthM decimal.Decimal) int64 {
	if totalM.Sign() <= 0 || stockLengthM.Sign() <= 0 {
		return 0
	}
	return totalM.Div(stockLengthM).Ceil().IntPart()
}

// AggregatePurchase merges expanded line items across models by
// (material, spec) for purchase-order generation. This is the one place
// pipe rows convert from linear meters to whole pieces: the unit becomes
// "EA", the quantity the ceil-divided piece count, and the unit price
// scales back from per-meter to per-piece.
func AggregatePurchase(items []LineItem) []LineItem {
	out := []LineItem{}
	index := map[string]int{}

	for _, it := range items {
		if it.IsHeader {
			continue
		}
		key := it.MaterialName + "\x00" + it.Standard
		if i, ok := index[key]; ok {
			out[i].Quantity = out[i].Quantity.Add(it.Quantity)
			out[i].Amount = out[i].Amount.Add(it.Amount)
			continue
		}
		merged := it
		merged.ModelName = ""
		merged.Notes = ""
		index[key] = len(out)
		out = append(out, merged)
	}

	for i := range out {
		it := &out[i]
		if it.StockLengthM.Sign() <= 0 {
			continue
		}
		pieces := PipePieces(it.Quantity, it.StockLengthM)
		it.Notes = fmt.Sprintf("%s m required", it.Quantity.String())
		it.Quantity = decimal.NewFromInt(pieces)
		it.Unit = "EA"
		it.UnitPrice = it.UnitPrice.Mul(it.StockLengthM)
		it.Amount = it.Quantity.Mul(it.UnitPrice)
	}
	return out
}
