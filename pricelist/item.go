// Package pricelist implements the price-list ingestion engine: cell text
// sanitation, origin-name canonicalization, currency parsing and the
// workbook scanner that turns an uploaded 단가표 into validated price items.
package pricelist

// Item is one purchasable product at one price-list version. Items are only
// ever produced by the scanner with all four fields validated; rows that
// cannot fill them are dropped during the scan.
type Item struct {
	// Country is the canonical origin code, e.g. "BR", or a bracketed
	// pseudo-origin tag such as "[디카페인]".
	Country string `json:"country"`
	// Name is the sanitized product display name.
	Name string `json:"name"`
	// Price is the unit price in won, always finite and positive.
	Price float64 `json:"price"`
	// PriceGroup is the tag of the sheet the item came from.
	PriceGroup string `json:"price_group"`
}
