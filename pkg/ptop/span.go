package ptop

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// widthMarker prefers an explicit width marker ("W2000", "w-2000")
	// ahead of any bare digit run.
	widthMarker = regexp.MustCompile(`[Ww]\s*[-_×x*]?\s*(\d{3,5})`)
	bareDigits  = regexp.MustCompile(`(\d{3,5})`)
)

// ParseWidthMeters extracts a width in meters from a free-text model
// standard string. Values above 10 are treated as millimeters and divided
// by 1000 (rounded to 3 decimals). Returns fallback when nothing parses.
func ParseWidthMeters(standard string, fallback float64) float64 {
	if standard == "" {
		return fallback
	}
	for _, re := range []*regexp.Regexp{widthMarker, bareDigits} {
		m := re.FindStringSubmatch(standard)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > 10 {
			return math.Round(v) / 1000
		}
		return v
	}
	return fallback
}

// DeriveSpanCount computes how many spans of a model fit a requested total
// length: round(length ÷ width), clamped to a minimum of 1. Exact halves
// round to even (100.5m at 1m width is 100 spans, 101.5m is 102). The width
// comes out of the model standard string via ParseWidthMeters. Never fails;
// a non-positive length or an unparseable width degrades to a usable default
// rather than blocking the caller.
func DeriveSpanCount(totalLengthM float64, modelStandard string, fallbackWidthM float64) int {
	if totalLengthM <= 0 || math.IsNaN(totalLengthM) || math.IsInf(totalLengthM, 0) {
		return 1
	}
	if fallbackWidthM <= 0 {
		fallbackWidthM = DefaultSpanWidthM
	}
	width := ParseWidthMeters(modelStandard, fallbackWidthM)
	if width <= 0 {
		width = fallbackWidthM
	}
	n := int(math.RoundToEven(totalLengthM / width))
	if n < 1 {
		return 1
	}
	return n
}
