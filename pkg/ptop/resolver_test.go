package ptop

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// fakeCatalogs serves in-memory catalog fixtures in slice order, matching
// the stable-iteration contract of CatalogProvider.
type fakeCatalogs struct {
	primary   []CatalogEntry
	secondary []CatalogEntry
}

func (f *fakeCatalogs) SearchPrimary(productName string) ([]CatalogEntry, error) {
	out := []CatalogEntry{}
	for _, row := range f.primary {
		if strings.TrimSpace(row.ProductName) == strings.TrimSpace(productName) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeCatalogs) SearchSecondary(query string) ([]CatalogEntry, error) {
	return f.secondary, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCatalogs() *fakeCatalogs {
	return &fakeCatalogs{
		primary: []CatalogEntry{
			{ProductName: "HGI PIPE", Standard: "50*50*1.6T", Unit: "EA", UnitPrice: dec("18000"), PipeLengthM: dec("6")},
			{ProductName: "HGI PIPE", Standard: "75*75*2.0T", Unit: "EA", UnitPrice: dec("30000"), PipeLengthM: dec("6")},
			{ProductName: "PLATE", Standard: "100*100*3.0T", Unit: "EA", UnitPrice: dec("5000")},
		},
		secondary: []CatalogEntry{
			{ProductName: "ANCHOR BOLT SET", Standard: "M12*100", Unit: "SET", UnitPrice: dec("1500")},
			{ProductName: "CAP", Standard: "50*50", Unit: "EA", UnitPrice: dec("300")},
		},
	}
}

func TestResolvePrimaryPipe(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("HGI PIPE", "50x50x1.6T", "각파이프")
	if !res.Found {
		t.Fatal("expected a primary catalog match")
	}
	// 18000 per 6m stock length = 3000 per meter.
	if !res.UnitPrice.Equal(dec("3000")) {
		t.Errorf("unit price = %s, expected 3000", res.UnitPrice)
	}
	if res.FullSpec != "50*50*1.6T×6m" {
		t.Errorf("full spec = %q, expected %q", res.FullSpec, "50*50*1.6T×6m")
	}
	if !res.StockLengthM.Equal(dec("6")) {
		t.Errorf("stock length = %s, expected 6", res.StockLengthM)
	}
}

func TestResolvePrimaryNonPipe(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("PLATE", "100*100*3.0T", "")
	if !res.Found {
		t.Fatal("expected a primary catalog match")
	}
	if !res.UnitPrice.Equal(dec("5000")) {
		t.Errorf("unit price = %s, expected 5000 (verbatim, no stock-length math)", res.UnitPrice)
	}
	if res.FullSpec != "100*100*3.0T" {
		t.Errorf("full spec = %q, expected verbatim spec", res.FullSpec)
	}
	if res.StockLengthM.Sign() != 0 {
		t.Errorf("stock length = %s, expected zero for non-pipe", res.StockLengthM)
	}
}

func TestResolveReversedDimensions(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("PLATE", "100*100*3.0T", "")
	if !res.Found {
		t.Fatal("baseline resolve failed")
	}

	cat := testCatalogs()
	cat.primary[2].Standard = "120*100*3.0T"
	r = NewPriceResolver(cat, nil)
	res = r.Resolve("PLATE", "100x120x3.0T", "")
	if !res.Found {
		t.Error("expected reversed-dimension match against 120*100*3.0T")
	}
}

func TestResolveSecondaryByMaterialName(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("HARDWARE", "nonexistent-spec", "ANCHOR BOLT")
	if !res.Found {
		t.Fatal("expected a secondary catalog match by material name")
	}
	if !res.UnitPrice.Equal(dec("1500")) {
		t.Errorf("unit price = %s, expected 1500", res.UnitPrice)
	}
	if res.FullSpec != "M12*100" {
		t.Errorf("full spec = %q, expected secondary row spec verbatim", res.FullSpec)
	}
}

func TestResolveSecondaryBySpecContainment(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("HARDWARE", "M12x100", "")
	if !res.Found {
		t.Fatal("expected a secondary catalog match by normalized spec containment")
	}
	if !res.UnitPrice.Equal(dec("1500")) {
		t.Errorf("unit price = %s, expected 1500", res.UnitPrice)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewPriceResolver(testCatalogs(), nil)

	res := r.Resolve("UNKNOWN", "9x9x9T", "")
	if res.Found {
		t.Fatal("expected NOT_FOUND")
	}
	if res.UnitPrice.Sign() != 0 {
		t.Errorf("NOT_FOUND unit price = %s, expected zero", res.UnitPrice)
	}
	if res.FullSpec != "" {
		t.Errorf("NOT_FOUND full spec = %q, expected empty", res.FullSpec)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	cat := testCatalogs()
	cat.primary = append([]CatalogEntry{
		{ProductName: "HGI PIPE", Standard: "50*50*1.6T", Unit: "EA", UnitPrice: dec("12000"), PipeLengthM: dec("6")},
	}, cat.primary...)
	r := NewPriceResolver(cat, nil)

	res := r.Resolve("HGI PIPE", "50*50*1.6T", "")
	if !res.UnitPrice.Equal(dec("2000")) {
		t.Errorf("unit price = %s, expected 2000 from the first row in catalog order", res.UnitPrice)
	}
}
