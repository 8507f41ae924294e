package ptop

import "testing"

func TestParseWidthMeters(t *testing.T) {
	tests := []struct {
		name     string
		standard string
		expected float64
	}{
		{"marker prefix", "W2000", 2.0},
		{"bare millimeters", "2500", 2.5},
		{"marker with separator", "W-1800", 1.8},
		{"composite standard", "W2000×H1200", 2.0},
		{"height only falls back to first run", "H1200", 1.2},
		{"empty", "", 2.0},
		{"no digits", "standard fence", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseWidthMeters(tt.standard, 2.0); got != tt.expected {
				t.Errorf("ParseWidthMeters(%q, 2.0) = %v, expected %v", tt.standard, got, tt.expected)
			}
		})
	}
}

func TestParseWidthMetersBareMeters(t *testing.T) {
	// Single-digit widths are below the 3-digit minimum of the pattern,
	// so they fall back.
	if got := ParseWidthMeters("2", 2.0); got != 2.0 {
		t.Errorf("ParseWidthMeters(\"2\", 2.0) = %v, expected fallback 2.0", got)
	}
}

func TestDeriveSpanCount(t *testing.T) {
	tests := []struct {
		name         string
		totalLengthM float64
		standard     string
		expected     int
	}{
		{"100m at 2m width", 100, "W2000", 50},
		{"100m at 2.5m width", 100, "2500", 40},
		{"zero length", 0, "W2000", 1},
		{"negative length", -5, "W2000", 1},
		{"empty standard uses fallback", 100, "", 50},
		{"unparseable standard uses fallback", 100, "fence", 50},
		{"rounds up", 101.2, "W2000", 51},
		{"rounds down", 100.9, "W2000", 50},
		{"half rounds to even below", 101, "W2000", 50},
		{"half rounds to even above", 103, "W2000", 52},
		{"short length clamps to 1", 0.5, "W2000", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSpanCount(tt.totalLengthM, tt.standard, 2.0)
			if got != tt.expected {
				t.Errorf("DeriveSpanCount(%v, %q, 2.0) = %d, expected %d",
					tt.totalLengthM, tt.standard, got, tt.expected)
			}
		})
	}
}

func TestDeriveSpanCountNeverBelowOne(t *testing.T) {
	for _, length := range []float64{-100, -1, 0, 0.001, 0.9} {
		if got := DeriveSpanCount(length, "W2000", 2.0); got < 1 {
			t.Errorf("DeriveSpanCount(%v) = %d, must be >= 1", length, got)
		}
	}
}
