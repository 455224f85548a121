package pricelist

import (
	"math"
	"strconv"
	"strings"
)

// priceStripper removes the formatting that appears in currency cells:
// won markers, thousands separators and interior spaces left by sanitation.
var priceStripper = strings.NewReplacer(
	"원", "",
	"₩", "",
	",", "",
	" ", "",
)

// ParsePrice parses a currency-formatted cell into a unit price in won.
// It accepts numeric cells and strings like "12,000원", "₩ 12000" or
// "12000.50". The second return is false for anything that does not yield
// a finite number greater than zero.
func ParsePrice(v Cell) (float64, bool) {
	s := priceStripper.Replace(SanitizeText(v))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return n, true
}
