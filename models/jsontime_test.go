package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", `"2026-03-15T09:30:00Z"`, time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"no timezone", `"2026-03-15T09:30:00"`, time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"date only", `"2026-03-15"`, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"microseconds", `"2026-03-15T09:30:00.123456"`, time.Date(2026, 3, 15, 9, 30, 0, 123456000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			if err := json.Unmarshal([]byte(tt.input), &jt); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if !time.Time(jt).Equal(tt.want) {
				t.Errorf("got %v, want %v", time.Time(jt), tt.want)
			}
		})
	}
}

func TestJSONTimeUnmarshalInvalid(t *testing.T) {
	var jt JSONTime
	if err := json.Unmarshal([]byte(`"15/03/2026"`), &jt); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestJSONTimeMarshal(t *testing.T) {
	jt := JSONTime(time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC))
	b, err := json.Marshal(jt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-03-15T09:30:00Z"` {
		t.Errorf("got %s", b)
	}
}

func TestJSONTimeScan(t *testing.T) {
	want := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	var jt JSONTime
	if err := jt.Scan(want); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if !time.Time(jt).Equal(want) {
		t.Errorf("got %v, want %v", time.Time(jt), want)
	}

	var fromString JSONTime
	if err := fromString.Scan("2026-03-15T09:30:00Z"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if !time.Time(fromString).Equal(want) {
		t.Errorf("got %v, want %v", time.Time(fromString), want)
	}

	var fromNil JSONTime
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !time.Time(fromNil).IsZero() {
		t.Error("nil scan should yield zero time")
	}
}
