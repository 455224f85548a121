package pricelist

import (
	"fmt"
	"regexp"
	"strconv"
)

// fileDatePattern matches the YYYYMM run suppliers embed in file names,
// e.g. "단가표_202508.xlsx".
var fileDatePattern = regexp.MustCompile(`(20\d{2})(0[1-9]|1[0-2])`)

// FileDateLabel derives the display label of a price list from its uploaded
// file name. A recognizable year-month run becomes "2025년 8월 단가표" (month
// without a leading zero); otherwise the raw file name is returned so the
// upload still carries some identification.
func FileDateLabel(fileName string) string {
	m := fileDatePattern.FindStringSubmatch(fileName)
	if m == nil {
		return fileName
	}
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s년 %d월 단가표", m[1], month)
}
