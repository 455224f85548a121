package pricelist

// DefaultMaxSheetRows caps how many rows a single permitted sheet may carry
// before the scan is aborted.
const DefaultMaxSheetRows = 5000

// Config carries the lookup data the scanner runs with. Production code uses
// DefaultConfig unchanged; tests inject alternates to pin down individual
// behaviors.
type Config struct {
	// AllowedSheets names the price-group tabs that are scanned. Every
	// other sheet in the workbook is ignored without error.
	AllowedSheets []string

	// MaxSheetRows aborts the scan with SheetTooLargeError when one
	// permitted sheet exceeds it. Zero or negative disables the cap.
	MaxSheetRows int

	// CountryCol is the zero-based column the origin label lives in.
	CountryCol int

	// NameLabels and PriceLabels are the header synonyms that identify the
	// product-name and unit-price columns. A row counts as a header only
	// when it matches one label of each kind.
	NameLabels  []string
	PriceLabels []string

	// CountryTable maps sanitized origin names to canonical codes.
	CountryTable map[string]string
}

// DefaultConfig returns the production scanner configuration for the
// supplier's 단가표 layout.
func DefaultConfig() Config {
	return Config{
		AllowedSheets: []string{"(1)", "(2)", "(3)", "(4)"},
		MaxSheetRows:  DefaultMaxSheetRows,
		CountryCol:    0,
		NameLabels:    []string{"품명", "상품명"},
		PriceLabels:   []string{"단가", "가격"},
		CountryTable:  DefaultCountryTable(),
	}
}

// defaultCountryTable backs NormalizeCountry. Keys are sanitized Korean
// origin names, values the canonical short codes. 디카페인 is not a country;
// it is kept as a bracketed tag so decaf blocks group separately.
var defaultCountryTable = map[string]string{
	"브라질":    "BR",
	"콜롬비아":   "CO",
	"에티오피아":  "ET",
	"케냐":     "KE",
	"과테말라":   "GT",
	"코스타리카":  "CR",
	"온두라스":   "HN",
	"엘살바도르":  "SV",
	"니카라과":   "NI",
	"파나마":    "PA",
	"멕시코":    "MX",
	"페루":     "PE",
	"볼리비아":   "BO",
	"에콰도르":   "EC",
	"인도네시아":  "ID",
	"인도":     "IN",
	"베트남":    "VN",
	"예멘":     "YE",
	"탄자니아":   "TZ",
	"르완다":    "RW",
	"부룬디":    "BI",
	"파푸아뉴기니": "PG",
	"디카페인":   "[디카페인]",
}

// DefaultCountryTable returns a copy of the built-in origin table.
func DefaultCountryTable() map[string]string {
	table := make(map[string]string, len(defaultCountryTable))
	for name, code := range defaultCountryTable {
		table[name] = code
	}
	return table
}
