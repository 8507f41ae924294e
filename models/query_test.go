package models

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    ListParams
		wantErr bool
	}{
		{"defaults", "/x", ListParams{Page: 1, PageSize: 50}, false},
		{"explicit", "/x?page=3&pageSize=20&q=pipe", ListParams{Page: 3, PageSize: 20, Keyword: "pipe"}, false},
		{"keyword only", "/x?q=HGI", ListParams{Page: 1, PageSize: 50, Keyword: "HGI"}, false},
		{"page zero", "/x?page=0", ListParams{}, true},
		{"negative page", "/x?page=-2", ListParams{}, true},
		{"non-numeric page", "/x?page=abc", ListParams{}, true},
		{"pageSize over cap", "/x?pageSize=1000", ListParams{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListParams(httptest.NewRequest("GET", tt.url, nil))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseListParams(%s): %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsValidStage(t *testing.T) {
	for _, stage := range ProcessStages {
		if !IsValidStage(stage) {
			t.Errorf("IsValidStage(%q) = false", stage)
		}
	}
	for _, stage := range []string{"", "welding", "CUTTING", "not_started"} {
		if IsValidStage(stage) {
			t.Errorf("IsValidStage(%q) = true", stage)
		}
	}
}
