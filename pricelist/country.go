package pricelist

import (
	"strings"
	"unicode/utf8"
)

// NormalizeCountry cleans a raw origin cell and maps it to its canonical
// code via the default table. Unknown origins come back sanitized but
// otherwise untouched; empty cells come back as "".
func NormalizeCountry(v Cell) string {
	return normalizeCountry(defaultCountryTable, v)
}

func normalizeCountry(table map[string]string, v Cell) string {
	s := SanitizeText(v)
	if s == "" {
		return ""
	}
	s = rejoinSpacedName(s)
	if code, ok := table[s]; ok {
		return code
	}
	return s
}

// rejoinSpacedName repairs origin names that merged cells smear into
// letter-spaced form. Only when every space-separated token is a single
// rune are the tokens glued back together, so "브 라 질" becomes "브라질"
// while a real multi-word name passes through unchanged.
func rejoinSpacedName(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 1 {
			return s
		}
	}
	return strings.Join(fields, "")
}
