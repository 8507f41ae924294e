package ptop

import (
	"errors"
	"testing"
)

type fakeRegistry struct {
	models map[string]*Model
}

func (f *fakeRegistry) GetModelByName(name string) (*Model, error) {
	return f.models[name], nil
}

type fakeBOM struct {
	boms map[string][]BOMLine
}

func (f *fakeBOM) GetBOM(modelID string) ([]BOMLine, error) {
	return f.boms[modelID], nil
}

func testEngine() *Engine {
	registry := &fakeRegistry{models: map[string]*Model{
		"DAL01-2012": {ID: "DH001", Name: "DAL01-2012", Category: "design fence", Standard: "W2000×H1200"},
		"DAL02-2515": {ID: "DH002", Name: "DAL02-2515", Category: "design fence", Standard: "W2500×H1500"},
		"EMPTY-01":   {ID: "DH099", Name: "EMPTY-01", Category: "design fence", Standard: "W2000"},
	}}
	boms := &fakeBOM{boms: map[string][]BOMLine{
		"DH001": {
			{ModelName: "DAL01-2012", MaterialName: "square pipe", Standard: "50*50*1.6T", Unit: "M", Category: "HGI PIPE", Quantity: dec("1.4")},
			{ModelName: "DAL01-2012", MaterialName: "anchor set", Standard: "M12*100", Unit: "SET", Category: "HARDWARE", Quantity: dec("4")},
		},
		"DH002": {
			{ModelName: "DAL02-2515", MaterialName: "square pipe", Standard: "75*75*2.0T", Unit: "M", Category: "HGI PIPE", Quantity: dec("2")},
		},
	}}
	return NewEngine(boms, testCatalogs(), registry, nil)
}

func TestQuoteModelDerivesSpanCount(t *testing.T) {
	e := testEngine()

	// 100 m at the model's 2 m width = 50 spans.
	items, err := e.QuoteModel(SpanPlan{ModelName: "DAL01-2012", TotalLengthM: 100})
	if err != nil {
		t.Fatalf("QuoteModel: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// 1.4 m × 50 spans = 70 m of pipe.
	if !items[0].Quantity.Equal(dec("70")) {
		t.Errorf("pipe quantity = %s, expected 70", items[0].Quantity)
	}
}

func TestQuoteModelExplicitSpanCountWins(t *testing.T) {
	e := testEngine()

	items, err := e.QuoteModel(SpanPlan{ModelName: "DAL01-2012", TotalLengthM: 100, SpanCount: 10})
	if err != nil {
		t.Fatalf("QuoteModel: %v", err)
	}
	if !items[0].Quantity.Equal(dec("14")) {
		t.Errorf("pipe quantity = %s, expected 14 with explicit span count 10", items[0].Quantity)
	}
}

func TestQuoteModelUnknownModel(t *testing.T) {
	e := testEngine()

	_, err := e.QuoteModel(SpanPlan{ModelName: "NOPE", SpanCount: 1})
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("err = %v, expected ErrModelNotFound", err)
	}
}

func TestQuoteModelEmptyBOM(t *testing.T) {
	e := testEngine()

	_, err := e.QuoteModel(SpanPlan{ModelName: "EMPTY-01", SpanCount: 5})
	if !errors.Is(err, ErrEmptyBOM) {
		t.Errorf("err = %v, expected ErrEmptyBOM", err)
	}
}

func TestBuildQuotation(t *testing.T) {
	e := testEngine()

	q, err := e.BuildQuotation([]SpanPlan{
		{ModelName: "DAL01-2012", SpanCount: 10},
		{ModelName: "DAL02-2515", SpanCount: 4},
	})
	if err != nil {
		t.Fatalf("BuildQuotation: %v", err)
	}

	headers := 0
	for _, it := range q.Items {
		if it.IsHeader {
			headers++
		}
	}
	if headers != 2 {
		t.Errorf("expected one section header per model, got %d", headers)
	}
	if q.Spans["DAL01-2012"] != 10 || q.Spans["DAL02-2515"] != 4 {
		t.Errorf("span map = %v", q.Spans)
	}

	// DAL01: pipe 14 m × 3000 + anchors 40 × 1500 = 102000.
	// DAL02: pipe 8 m × 5000 = 40000. Supply = 142000, VAT = 14200.
	if !q.Summary.SupplyPrice.Equal(dec("142000")) {
		t.Errorf("supply = %s, expected 142000", q.Summary.SupplyPrice)
	}
	if !q.Summary.VAT.Equal(dec("14200")) {
		t.Errorf("vat = %s, expected 14200", q.Summary.VAT)
	}
	if !q.Summary.Total.Equal(dec("156200")) {
		t.Errorf("total = %s, expected 156200", q.Summary.Total)
	}
	if q.Summary.ItemCount != 3 {
		t.Errorf("item count = %d, expected 3 (headers excluded)", q.Summary.ItemCount)
	}
}

func TestBuildQuotationAbortsOnEmptyBOM(t *testing.T) {
	e := testEngine()

	_, err := e.BuildQuotation([]SpanPlan{
		{ModelName: "DAL01-2012", SpanCount: 1},
		{ModelName: "EMPTY-01", SpanCount: 1},
	})
	if !errors.Is(err, ErrEmptyBOM) {
		t.Errorf("err = %v, expected ErrEmptyBOM surfaced, not skipped", err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.SupplyPrice.Sign() != 0 || s.VAT.Sign() != 0 || s.Total.Sign() != 0 || s.ItemCount != 0 {
		t.Errorf("empty summary = %+v, expected all zeros", s)
	}
}
