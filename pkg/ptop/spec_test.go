package ptop

import "testing"

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase x", "50x50x1.6", "50*50*1.6"},
		{"uppercase X", "50X50X1.6T", "50*50*1.6T"},
		{"already canonical", "75*75*2.0T", "75*75*2.0T"},
		{"phi variant", "Φ60.5", "Ø60.5"},
		{"small phi variant", "φ60.5", "Ø60.5"},
		{"empty set symbol", "∅48.6x2.3", "Ø48.6*2.3"},
		{"lowercases to upper", "50x50x1.6t", "50*50*1.6T"},
		{"pass-through", "M12 BOLT", "M12 BOLT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSpec(tt.input); got != tt.expected {
				t.Errorf("NormalizeSpec(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeSpecIdempotent(t *testing.T) {
	inputs := []string{"50x50x1.6T", "Φ60.5", "75*75*2.0t", "", "W2000×H1200", "∅48.6x2.3"}
	for _, s := range inputs {
		once := NormalizeSpec(s)
		twice := NormalizeSpec(once)
		if once != twice {
			t.Errorf("NormalizeSpec not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestSpecsEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"identical", "75*50*2.0T", "75*50*2.0T", true},
		{"x vs star", "75x50x2.0T", "75*50*2.0T", true},
		{"case", "75*50*2.0t", "75*50*2.0T", true},
		{"reversed dimensions", "75*50*2.0T", "50*75*2.0T", true},
		{"reversed with x", "50x75x2.0T", "75*50*2.0T", true},
		{"different suffix", "75*50*2.0T", "75*50*2.5T", false},
		{"different dims", "75*50*2.0T", "75*60*2.0T", false},
		{"whitespace trimmed", " 75*50*2.0T ", "75*50*2.0T", true},
		{"diameter variants", "Φ60.5", "Ø60.5", true},
		{"empty left", "", "75*50*2.0T", false},
		{"empty right", "75*50*2.0T", "", false},
		{"both empty", "", "", false},
		{"no dims pattern", "M12", "M12 ", true},
		{"unrelated", "M12", "M16", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpecsEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("SpecsEqual(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestIsPipeCategory(t *testing.T) {
	tests := []struct {
		category string
		expected bool
	}{
		{"HGI PIPE", true},
		{"pipe", true},
		{"Stainless Pipe", true},
		{"각파이프", true},
		{"아연 파이프", true},
		{"PLATE", false},
		{"", false},
		{"BOLT", false},
		{"파이", false},
	}
	for _, tt := range tests {
		if got := IsPipeCategory(tt.category); got != tt.expected {
			t.Errorf("IsPipeCategory(%q) = %v, expected %v", tt.category, got, tt.expected)
		}
	}
}
