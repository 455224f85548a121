package pricelist

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sanitizeReplacer removes the invisible characters that survive a naive
// TrimSpace and folds the non-breaking space variants into plain spaces so
// the later field collapse catches them.
var sanitizeReplacer = strings.NewReplacer(
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
	"\uFEFF", "", // byte order mark
	" ", " ", // no-break space
	" ", " ", // narrow no-break space
)

// CellText coerces a raw cell to text. Missing cells become "". Numbers use
// the shortest representation that round-trips, so integral floats read from
// a spreadsheet print without a decimal point.
func CellText(v Cell) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// SanitizeText cleans one cell of spreadsheet text: Unicode NFC, zero-width
// and BOM characters stripped, every whitespace run collapsed to a single
// space, leading and trailing whitespace removed. Idempotent; sanitizing an
// already clean string returns it unchanged.
func SanitizeText(v Cell) string {
	s := norm.NFC.String(CellText(v))
	s = sanitizeReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
