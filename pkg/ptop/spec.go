package ptop

import (
	"regexp"
	"strings"
)

// specReplacer canonicalizes the multiplication and diameter symbol
// variants that show up in hand-entered dimension strings.
var specReplacer = strings.NewReplacer(
	"x", "*",
	"X", "*",
	"∅", "Ø",
	"Φ", "Ø",
	"φ", "Ø",
)

// NormalizeSpec canonicalizes a dimension string for comparison:
// 'x'/'X' become '*', diameter symbol variants become 'Ø', and the result
// is uppercased. Unparseable input passes through uppercased.
func NormalizeSpec(spec string) string {
	return strings.ToUpper(specReplacer.Replace(spec))
}

// dimsPattern matches "<dim1>*<dim2>*<suffix>" on a normalized spec,
// e.g. "75*50*2.0T".
var dimsPattern = regexp.MustCompile(`^(\d+)\*(\d+)\*(.+)$`)

// SpecsEqual reports whether two dimension strings name the same physical
// part. Exact normalized equality wins first; otherwise a reversed-dimension
// match is attempted, so "50*75*2.0T" equals "75*50*2.0T" because width and
// height are an unordered pair.
func SpecsEqual(a, b string) bool {
	ac := strings.TrimSpace(a)
	bc := strings.TrimSpace(b)
	if ac == "" || bc == "" {
		return false
	}
	if ac == bc {
		return true
	}

	an := NormalizeSpec(ac)
	bn := NormalizeSpec(bc)
	if an == bn {
		return true
	}

	am := dimsPattern.FindStringSubmatch(an)
	bm := dimsPattern.FindStringSubmatch(bn)
	if am == nil || bm == nil {
		return false
	}
	if strings.TrimSpace(am[3]) != strings.TrimSpace(bm[3]) {
		return false
	}
	return (am[1] == bm[1] && am[2] == bm[2]) ||
		(am[1] == bm[2] && am[2] == bm[1])
}

// IsPipeCategory reports whether a BOM category selects stock-length
// pipe handling. Both the English and Korean markers count, since
// categories are hand-entered in either language.
func IsPipeCategory(category string) bool {
	c := strings.ToUpper(category)
	return strings.Contains(c, "PIPE") || strings.Contains(c, "파이프")
}
