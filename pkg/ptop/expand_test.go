package ptop

import (
	"strings"
	"testing"
)

// staticResolver returns canned results keyed by standard.
type staticResolver struct {
	results map[string]PriceResult
}

func (s *staticResolver) Resolve(category, standard, materialName string) PriceResult {
	if res, ok := s.results[standard]; ok {
		return res
	}
	return PriceResult{}
}

func pipeBOMLine(qty string) BOMLine {
	return BOMLine{
		ModelName:    "DAL01-2012",
		MaterialName: "square pipe",
		Standard:     "50*50*1.6T",
		Unit:         "M",
		Category:     "HGI PIPE",
		Quantity:     dec(qty),
	}
}

func TestExpandEmptyInputs(t *testing.T) {
	r := &staticResolver{}

	if got := Expand(nil, 10, r); len(got) != 0 {
		t.Errorf("Expand(nil, 10) = %d items, expected empty", len(got))
	}
	if got := Expand([]BOMLine{pipeBOMLine("1.4")}, 0, r); len(got) != 0 {
		t.Errorf("Expand(bom, 0) = %d items, expected empty", len(got))
	}
	if got := Expand([]BOMLine{pipeBOMLine("1.4")}, -3, r); len(got) != 0 {
		t.Errorf("Expand(bom, -3) = %d items, expected empty", len(got))
	}
}

func TestExpandPipeRow(t *testing.T) {
	r := &staticResolver{results: map[string]PriceResult{
		"50*50*1.6T": {
			FullSpec:     "50*50*1.6T×6m",
			UnitPrice:    dec("3000"),
			StockLengthM: dec("6"),
			Found:        true,
		},
	}}

	items := Expand([]BOMLine{pipeBOMLine("1.4")}, 10, r)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]

	// 1.4 m per span × 10 spans = 14 m, displayed in meters.
	if !it.Quantity.Equal(dec("14")) {
		t.Errorf("quantity = %s, expected 14 linear meters", it.Quantity)
	}
	if it.Unit != "M" {
		t.Errorf("unit = %q, expected display unit to stay M", it.Unit)
	}
	// ceil(14/6) = 3 pieces, annotated on the note.
	if !strings.Contains(it.Notes, "6m × 3 pcs") {
		t.Errorf("notes = %q, expected a 3-piece stock-length annotation", it.Notes)
	}
	if !it.Amount.Equal(dec("42000")) {
		t.Errorf("amount = %s, expected 14 × 3000 = 42000", it.Amount)
	}
	if it.Standard != "50*50*1.6T×6m" {
		t.Errorf("standard = %q, expected the resolved full spec", it.Standard)
	}
}

func TestExpandNonPipeRow(t *testing.T) {
	r := &staticResolver{results: map[string]PriceResult{
		"M12*100": {FullSpec: "M12*100", UnitPrice: dec("1500"), Found: true},
	}}

	bom := []BOMLine{{
		ModelName:    "DAL01-2012",
		MaterialName: "anchor set",
		Standard:     "M12*100",
		Unit:         "SET",
		Category:     "HARDWARE",
		Quantity:     dec("4"),
	}}

	items := Expand(bom, 3, r)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].Quantity.Equal(dec("12")) {
		t.Errorf("quantity = %s, expected 12", items[0].Quantity)
	}
	if items[0].Unit != "SET" {
		t.Errorf("unit = %q, expected unchanged", items[0].Unit)
	}
	if !items[0].Amount.Equal(dec("18000")) {
		t.Errorf("amount = %s, expected 18000", items[0].Amount)
	}
	if items[0].StockLengthM.Sign() != 0 {
		t.Errorf("stock length = %s, expected zero for non-pipe", items[0].StockLengthM)
	}
}

func TestExpandUnresolvedRowKept(t *testing.T) {
	items := Expand([]BOMLine{{
		ModelName:    "DAL01-2012",
		MaterialName: "mystery bracket",
		Standard:     "??",
		Unit:         "EA",
		Quantity:     dec("2"),
	}}, 5, &staticResolver{})

	if len(items) != 1 {
		t.Fatalf("unresolved row must still appear in output, got %d items", len(items))
	}
	if items[0].UnitPrice.Sign() != 0 {
		t.Errorf("unit price = %s, expected zero for unresolved row", items[0].UnitPrice)
	}
	if !items[0].Quantity.Equal(dec("10")) {
		t.Errorf("quantity = %s, expected 10", items[0].Quantity)
	}
}

func TestExpandInlinePriceOverride(t *testing.T) {
	override := dec("777")
	items := Expand([]BOMLine{{
		ModelName:    "DAL01-2012",
		MaterialName: "custom part",
		Standard:     "CUSTOM-1",
		Unit:         "EA",
		Quantity:     dec("1"),
		UnitPrice:    &override,
	}}, 2, &staticResolver{})

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].UnitPrice.Equal(override) {
		t.Errorf("unit price = %s, expected inline override 777", items[0].UnitPrice)
	}
	if !items[0].Amount.Equal(dec("1554")) {
		t.Errorf("amount = %s, expected 1554", items[0].Amount)
	}
}

func TestExpandMergesDuplicateRows(t *testing.T) {
	r := &staticResolver{results: map[string]PriceResult{
		"M12*100": {FullSpec: "M12*100", UnitPrice: dec("1500"), Found: true},
	}}

	bom := []BOMLine{
		{ModelName: "A", MaterialName: "anchor set", Standard: "M12*100", Unit: "SET", Quantity: dec("2")},
		{ModelName: "A", MaterialName: "anchor set", Standard: "M12*100", Unit: "SET", Quantity: dec("3")},
	}

	items := Expand(bom, 2, r)
	if len(items) != 1 {
		t.Fatalf("expected duplicate rows merged into 1 item, got %d", len(items))
	}
	if !items[0].Quantity.Equal(dec("10")) {
		t.Errorf("merged quantity = %s, expected (2+3)×2 = 10", items[0].Quantity)
	}
	if !items[0].Amount.Equal(dec("15000")) {
		t.Errorf("merged amount = %s, expected 15000", items[0].Amount)
	}
}

func TestExpandDeterministic(t *testing.T) {
	r := &staticResolver{results: map[string]PriceResult{
		"50*50*1.6T": {FullSpec: "50*50*1.6T×6m", UnitPrice: dec("3000"), StockLengthM: dec("6"), Found: true},
		"M12*100":    {FullSpec: "M12*100", UnitPrice: dec("1500"), Found: true},
	}}
	bom := []BOMLine{
		pipeBOMLine("1.4"),
		{ModelName: "DAL01-2012", MaterialName: "anchor set", Standard: "M12*100", Unit: "SET", Quantity: dec("4")},
	}

	a := Expand(bom, 7, r)
	b := Expand(bom, 7, r)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		same := a[i].MaterialName == b[i].MaterialName &&
			a[i].Standard == b[i].Standard &&
			a[i].Unit == b[i].Unit &&
			a[i].Notes == b[i].Notes &&
			a[i].Quantity.Equal(b[i].Quantity) &&
			a[i].UnitPrice.Equal(b[i].UnitPrice) &&
			a[i].Amount.Equal(b[i].Amount)
		if !same {
			t.Errorf("item %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPipePieces(t *testing.T) {
	tests := []struct {
		totalM   string
		stockM   string
		expected int64
	}{
		{"14", "6", 3},
		{"12", "6", 2},
		{"0.1", "6", 1},
		{"0", "6", 0},
		{"-3", "6", 0},
		{"6", "0", 0},
	}
	for _, tt := range tests {
		if got := PipePieces(dec(tt.totalM), dec(tt.stockM)); got != tt.expected {
			t.Errorf("PipePieces(%s, %s) = %d, expected %d", tt.totalM, tt.stockM, got, tt.expected)
		}
	}
}

func TestAggregatePurchase(t *testing.T) {
	r := &staticResolver{results: map[string]PriceResult{
		"50*50*1.6T": {FullSpec: "50*50*1.6T×6m", UnitPrice: dec("3000"), StockLengthM: dec("6"), Found: true},
	}}

	modelA := Expand([]BOMLine{pipeBOMLine("1.4")}, 10, r) // 14 m
	lineB := pipeBOMLine("1.0")
	lineB.ModelName = "DAL02-2015"
	modelB := Expand([]BOMLine{lineB}, 4, r) // 4 m

	header := LineItem{ModelName: "DAL01-2012", IsHeader: true}
	all := append([]LineItem{header}, append(modelA, modelB...)...)

	out := AggregatePurchase(all)
	if len(out) != 1 {
		t.Fatalf("expected cross-model merge into 1 purchase line, got %d", len(out))
	}
	po := out[0]

	// 18 m total → ceil(18/6) = 3 stock pieces at 6m × 3000/m = 18000 each.
	if po.Unit != "EA" {
		t.Errorf("unit = %q, expected EA after purchase conversion", po.Unit)
	}
	if !po.Quantity.Equal(dec("3")) {
		t.Errorf("quantity = %s, expected 3 pieces", po.Quantity)
	}
	if !po.UnitPrice.Equal(dec("18000")) {
		t.Errorf("unit price = %s, expected per-piece 18000", po.UnitPrice)
	}
	if !po.Amount.Equal(dec("54000")) {
		t.Errorf("amount = %s, expected 54000", po.Amount)
	}
	if !strings.Contains(po.Notes, "18") {
		t.Errorf("notes = %q, expected required meters noted", po.Notes)
	}
}
